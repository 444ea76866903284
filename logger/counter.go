package logger

import (
	"reflect"
	"time"

	"github.com/viant/gmetric"
	"github.com/viant/gmetric/counter"
	"github.com/viant/gmetric/provider"
)

//Counter abstracts a gmetric operation counter
type Counter interface {
	Begin(started time.Time) counter.OnDone
	IncrementValue(value interface{}) int64
	DecrementValue(value interface{}) int64
}

//Adapter tolerates an absent counter so metrics stay optional
type Adapter struct {
	counter Counter
}

func (a *Adapter) Begin(started time.Time) counter.OnDone {
	if a == nil || a.counter == nil {
		return nopOnDone
	}
	return a.counter.Begin(started)
}

func (a *Adapter) IncrementValue(value interface{}) int64 {
	if a == nil || a.counter == nil {
		return 0
	}
	return a.counter.IncrementValue(value)
}

func (a *Adapter) DecrementValue(value interface{}) int64 {
	if a == nil || a.counter == nil {
		return 0
	}
	return a.counter.DecrementValue(value)
}

func nopOnDone(_ time.Time, _ ...interface{}) int64 {
	return 0
}

type metricsLocation struct{}

func metricLocation() string {
	return reflect.TypeOf(metricsLocation{}).PkgPath()
}

//NewResolutionCounter registers, or reuses, an operation counter for the
//supplied metric name and returns a nil tolerant adapter.
func NewResolutionCounter(service *gmetric.Service, name string) *Adapter {
	if service == nil {
		return &Adapter{}
	}
	operation := service.LookupOperation(name)
	if operation == nil {
		return &Adapter{counter: service.MultiOperationCounter(metricLocation(), name, name+" performance", time.Millisecond, time.Minute, 2, provider.NewBasic())}
	}
	return &Adapter{counter: operation}
}
