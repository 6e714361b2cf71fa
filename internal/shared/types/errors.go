package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")

	ErrQueryFailed        = errors.New("cost and usage query failed")
	ErrSerializeFailed    = errors.New("report serialization failed")
	ErrStorageWriteFailed = errors.New("report storage write failed")
	ErrNotifyFailed       = errors.New("notification publish failed")
)

// ErrorKind identifica em qual etapa do pipeline o erro aconteceu.
type ErrorKind int

const (
	KindQueryFailed ErrorKind = iota + 1
	KindSerializeFailed
	KindStorageWriteFailed
	KindNotifyFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindQueryFailed:
		return "QueryFailed"
	case KindSerializeFailed:
		return "SerializeFailed"
	case KindStorageWriteFailed:
		return "StorageWriteFailed"
	case KindNotifyFailed:
		return "NotifyFailed"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindQueryFailed:
		return ErrQueryFailed
	case KindSerializeFailed:
		return ErrSerializeFailed
	case KindStorageWriteFailed:
		return ErrStorageWriteFailed
	case KindNotifyFailed:
		return ErrNotifyFailed
	default:
		return nil
	}
}

// ReportError is a pipeline failure tagged with the stage that produced it.
// errors.Is matches it against the sentinel of its kind and against the
// wrapped cause.
type ReportError struct {
	Kind ErrorKind
	Err  error
}

// NewReportError cria um ReportError do tipo informado.
func NewReportError(kind ErrorKind, err error) *ReportError {
	return &ReportError{Kind: kind, Err: err}
}

func (e *ReportError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func (e *ReportError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Format keeps the stack trace of the wrapped cause reachable through %+v.
func (e *ReportError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.Err != nil {
		fmt.Fprintf(s, "%s: %+v", e.Kind, e.Err)
		return
	}
	fmt.Fprint(s, e.Error())
}

// KindOf devolve o tipo do primeiro ReportError na cadeia, ou 0.
func KindOf(err error) ErrorKind {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}
