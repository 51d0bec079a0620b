package service

// AccountMetrics records outcomes of the account flows.
type AccountMetrics interface {
	// RecordOperation counts one finished operation, outcome being "success" or an error code.
	RecordOperation(operation, outcome string)

	// RecordStepFailure counts a failed best-effort step that did not stop its operation.
	RecordStepFailure(operation, step string)

	RecordAvatarsSwept(count int)
}
