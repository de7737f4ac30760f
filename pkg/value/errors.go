package value

import (
	"errors"
	"fmt"
)

// Error taxonomy for the transformation layer. Callers match with errors.Is
// against these sentinels; the Labeled wrapper carries the originating
// value's tag and an optional remediation hint.
var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrCast            = errors.New("cast error")
	ErrEmptyStream     = errors.New("empty stream")
	ErrPathNotFound    = errors.New("path not found")
	ErrUnsupportedLeaf = errors.New("unsupported leaf type")
)

// Labeled is an error from the taxonomy above, labeled with the source tag
// of the value that caused it. Errors propagate immediately: no retries, no
// partial output.
type Labeled struct {
	Kind  error
	Label string
	Help  string
	Tag   Tag
	Cause error
}

func (e *Labeled) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind.Error(), e.Label)
	if e.Tag.IsKnown() {
		msg = fmt.Sprintf("%s (at %s)", msg, e.Tag)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause)
	}
	if e.Help != "" {
		msg = fmt.Sprintf("%s; %s", msg, e.Help)
	}
	return msg
}

func (e *Labeled) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// TypeMismatch reports a wrong discriminant or element type. help carries a
// human remediation hint and may be empty.
func TypeMismatch(tag Tag, label, help string) error {
	return &Labeled{Kind: ErrTypeMismatch, Label: label, Help: help, Tag: tag}
}

// CastError wraps an engine-reported conversion failure without rephrasing
// its diagnostic.
func CastError(tag Tag, cause error) error {
	return &Labeled{Kind: ErrCast, Label: "series could not be converted to an index type", Tag: tag, Cause: cause}
}

// EmptyStream reports that a required upstream item was absent.
func EmptyStream(tag Tag) error {
	return &Labeled{Kind: ErrEmptyStream, Label: "no value found in the input stream", Tag: tag}
}

// PathNotFound names the first member of a column path that failed to
// resolve.
func PathNotFound(tag Tag, member string) error {
	return &Labeled{Kind: ErrPathNotFound, Label: fmt.Sprintf("cannot resolve %q", member), Tag: tag}
}

// UnsupportedLeaf reports a digest target that is neither string nor binary.
func UnsupportedLeaf(tag Tag, kind Kind) error {
	return &Labeled{
		Kind:  ErrUnsupportedLeaf,
		Label: fmt.Sprintf("cannot digest a %s value", kind),
		Help:  "only string and binary values can be digested",
		Tag:   tag,
	}
}
