package resultado

// succeedConfig collects the optional pieces of a success result before the
// generic Success value is assembled.
type succeedConfig struct {
	message string
	kind    Kind
}

// SucceedOption configures a success result at construction time.
type SucceedOption func(*succeedConfig)

// WithSuccessKind sets the success category. Panics immediately if kind is
// not in the success range.
func WithSuccessKind(kind Kind) SucceedOption {
	return func(cfg *succeedConfig) {
		mustSuccessKind(kind)
		cfg.kind = kind
	}
}

// WithMessage attaches an optional human-readable message to the success.
func WithMessage(message string) SucceedOption {
	return func(cfg *succeedConfig) { cfg.message = message }
}

// FailOption configures a failure at construction time.
type FailOption func(*Failure)

// WithKind sets the failure category. Panics immediately if kind is not in
// the failure range.
func WithKind(kind Kind) FailOption {
	return func(f *Failure) {
		mustFailureKind(kind)
		f.kind = kind
	}
}

// WithDetail attaches a longer description to the failure.
func WithDetail(detail string) FailOption {
	return func(f *Failure) { f.detail = detail }
}

// WithTraceID attaches a correlation identifier to the failure.
func WithTraceID(traceID string) FailOption {
	return func(f *Failure) { f.traceID = traceID }
}

// WithErrors stores plain error strings verbatim on the failure.
func WithErrors(errs ...string) FailOption {
	return func(f *Failure) { f.errs = append([]string(nil), errs...) }
}

// WithError appends err's message to the failure's plain error strings.
func WithError(err error) FailOption {
	return func(f *Failure) {
		if err != nil {
			f.errs = append(f.errs, err.Error())
		}
	}
}

// WithValidationErrors stores structured validation errors on the failure.
// Unlike FailValidation this does not touch the kind.
func WithValidationErrors(errs ...ValidationError) FailOption {
	return func(f *Failure) {
		f.validationErrors = append([]ValidationError(nil), errs...)
	}
}
