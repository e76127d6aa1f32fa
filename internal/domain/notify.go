package domain

// Notifier receives the semantic outcome of each mutating operation. The
// presentation layer decides how to render it; the aggregates only decide
// whether and what kind of notification fires.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}
