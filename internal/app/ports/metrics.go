package ports

type BridgeMetrics interface {
	RecordSnapshot()
	RecordActionDispatched(command string)
	RecordActionDropped()
	RecordActionRejected()
}
