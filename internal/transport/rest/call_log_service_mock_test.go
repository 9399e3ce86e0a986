package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/calllog"
)

var _ callLogService = &callLogServiceMock{}

type callLogServiceMock struct {
	ListCallLogsFunc func(ctx context.Context, input calllog.ListCallLogsInput) ([]domain.CallLogEntry, error)
	CallLogStatsFunc func(ctx context.Context) (*domain.CallLogStats, error)

	calls struct {
		ListCallLogs []struct {
			Ctx   context.Context
			Input calllog.ListCallLogsInput
		}
		CallLogStats []struct {
			Ctx context.Context
		}
	}
	lockListCallLogs sync.RWMutex
	lockCallLogStats sync.RWMutex
}

func (mock *callLogServiceMock) ListCallLogs(ctx context.Context, input calllog.ListCallLogsInput) ([]domain.CallLogEntry, error) {
	if mock.ListCallLogsFunc == nil {
		panic("callLogServiceMock.ListCallLogsFunc: method is nil but callLogService.ListCallLogs was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input calllog.ListCallLogsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListCallLogs.Lock()
	mock.calls.ListCallLogs = append(mock.calls.ListCallLogs, callInfo)
	mock.lockListCallLogs.Unlock()
	return mock.ListCallLogsFunc(ctx, input)
}

func (mock *callLogServiceMock) ListCallLogsCalls() []struct {
	Ctx   context.Context
	Input calllog.ListCallLogsInput
} {
	mock.lockListCallLogs.RLock()
	calls := mock.calls.ListCallLogs
	mock.lockListCallLogs.RUnlock()
	return calls
}

func (mock *callLogServiceMock) CallLogStats(ctx context.Context) (*domain.CallLogStats, error) {
	if mock.CallLogStatsFunc == nil {
		panic("callLogServiceMock.CallLogStatsFunc: method is nil but callLogService.CallLogStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCallLogStats.Lock()
	mock.calls.CallLogStats = append(mock.calls.CallLogStats, callInfo)
	mock.lockCallLogStats.Unlock()
	return mock.CallLogStatsFunc(ctx)
}

func (mock *callLogServiceMock) CallLogStatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockCallLogStats.RLock()
	calls := mock.calls.CallLogStats
	mock.lockCallLogStats.RUnlock()
	return calls
}
