// Hand-written GoMock mock in the MockGen output style.
// Source: comparator.go (specialized for int; mockgen does not generate
// mocks for generic interfaces, so this instantiation is hand-written in
// the generated style used elsewhere in this codebase, e.g. mock_state.go)

package common

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockIntComparator is a mock of Comparator[int].
type MockIntComparator struct {
	ctrl     *gomock.Controller
	recorder *MockIntComparatorMockRecorder
}

// MockIntComparatorMockRecorder is the mock recorder for MockIntComparator.
type MockIntComparatorMockRecorder struct {
	mock *MockIntComparator
}

// NewMockIntComparator creates a new mock instance.
func NewMockIntComparator(ctrl *gomock.Controller) *MockIntComparator {
	mock := &MockIntComparator{ctrl: ctrl}
	mock.recorder = &MockIntComparatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIntComparator) EXPECT() *MockIntComparatorMockRecorder {
	return m.recorder
}

// Compare mocks base method.
func (m *MockIntComparator) Compare(a, b *int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compare", a, b)
	ret0, _ := ret[0].(int)
	return ret0
}

// Compare indicates an expected call of Compare.
func (mr *MockIntComparatorMockRecorder) Compare(a, b interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compare", reflect.TypeOf((*MockIntComparator)(nil).Compare), a, b)
}
