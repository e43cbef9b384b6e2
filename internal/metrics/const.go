package metrics

const Namespace = "oidcsync"

const (
	ReconcileResultCreated   = "created"
	ReconcileResultUpdated   = "updated"
	ReconcileResultUnchanged = "unchanged"
)

const (
	RefreshTriggerSync  = "sync"
	RefreshTriggerAsync = "async"
)

const (
	FetchOutcomeSuccess  = "success"
	FetchOutcomeError    = "error"
	FetchOutcomeProtocol = "protocol_error"
)
