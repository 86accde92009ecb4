package proposal

import (
	"sync"
)

var _ enrichmentRecorder = &enrichmentRecorderMock{}

type enrichmentRecorderMock struct {
	RecordEnrichmentFunc func(step string, operation string, outcome string)

	calls struct {
		RecordEnrichment []struct {
			Step      string
			Operation string
			Outcome   string
		}
	}
	lockRecordEnrichment sync.RWMutex
}

func (mock *enrichmentRecorderMock) RecordEnrichment(step string, operation string, outcome string) {
	if mock.RecordEnrichmentFunc == nil {
		panic("enrichmentRecorderMock.RecordEnrichmentFunc: method is nil but enrichmentRecorder.RecordEnrichment was just called")
	}
	callInfo := struct {
		Step      string
		Operation string
		Outcome   string
	}{Step: step, Operation: operation, Outcome: outcome}
	mock.lockRecordEnrichment.Lock()
	mock.calls.RecordEnrichment = append(mock.calls.RecordEnrichment, callInfo)
	mock.lockRecordEnrichment.Unlock()
	mock.RecordEnrichmentFunc(step, operation, outcome)
}

func (mock *enrichmentRecorderMock) RecordEnrichmentCalls() []struct {
	Step      string
	Operation string
	Outcome   string
} {
	mock.lockRecordEnrichment.RLock()
	calls := mock.calls.RecordEnrichment
	mock.lockRecordEnrichment.RUnlock()
	return calls
}
