package wireval

// Default resource bounds, spec §5.
const (
	DefaultMaxDepth         = 100
	DefaultMaxStringLength  = 50 * 1024 * 1024 // 50 MiB
	DefaultMaxKeyframeCount = 10000
)

// Options configures a single Encode or Decode call. The zero value is
// not meant to be used directly; withDefaults fills it exactly once, the
// moment Encode/Decode receive it, mirroring the teacher's
// Config.copyAndFill() two-step (config.go, package encs). The caller's
// Options value is never mutated in place.
//
// The bound fields are pointers so that an explicitly-requested zero
// (WithMaxDepth(0), say) is distinguishable from "not set": a nil pointer
// means withDefaults fills it in. A MaxDepth of 0 is a real, honoured
// bound (only the top-level value is allowed); a MaxStringLength or
// MaxKeyframeCount of 0 or less disables that bound, since the wire
// decoders treat a non-positive limit as "no limit".
type Options struct {
	// MaxDepth bounds recursive descent (spec §3.2, §5).
	MaxDepth *int
	// MaxStringLength bounds STRING_LONG's declared length on decode
	// (spec §4.1).
	MaxStringLength *int
	// MaxKeyframeCount bounds NUMBERSEQUENCE/COLORSEQUENCE counts on
	// decode (spec §5).
	MaxKeyframeCount *int
}

func (o Options) withDefaults() Options {
	if o.MaxDepth == nil {
		d := DefaultMaxDepth
		o.MaxDepth = &d
	}
	if o.MaxStringLength == nil {
		l := DefaultMaxStringLength
		o.MaxStringLength = &l
	}
	if o.MaxKeyframeCount == nil {
		k := DefaultMaxKeyframeCount
		o.MaxKeyframeCount = &k
	}
	return o
}

// Option mutates an Options value under construction.
type Option func(*Options)

// WithMaxDepth overrides the default maximum recursion depth.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = &n }
}

// WithMaxStringLength overrides the default maximum STRING_LONG length.
func WithMaxStringLength(n int) Option {
	return func(o *Options) { o.MaxStringLength = &n }
}

// WithMaxKeyframeCount overrides the default maximum keyframe-list count.
func WithMaxKeyframeCount(n int) Option {
	return func(o *Options) { o.MaxKeyframeCount = &n }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return o.withDefaults()
}
