package cthreadpool

import "math"

// quantileEstimator implements the P² algorithm for streaming quantile
// estimation: O(1) per observation, O(1) to read back, no stored history.
//
// Reference: Jain, R. and Chlamtac, I. (1985). "The P^2 Algorithm for
// Dynamic Calculation of Quantiles and Histograms Without Storing
// Observations". Communications of the ACM, 28(10), pp. 1076-1085.
//
// Not thread-safe: every quantileEstimator in this package is only ever
// touched under the pool's informGate lock (updated by the manager while
// handling a worker-done event, read by Pool.Metrics), so it needs no
// lock of its own.
type quantileEstimator struct {
	p           float64
	q           [5]float64
	n           [5]int
	np          [5]float64
	dn          [5]float64
	initialized bool
	count       int
	initBuffer  [5]float64
}

func newQuantileEstimator(p float64) *quantileEstimator {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return &quantileEstimator{
		p:  p,
		dn: [5]float64{0, p / 2, p, (1 + p) / 2, 1},
	}
}

func (e *quantileEstimator) update(x float64) {
	e.count++

	if e.count <= 5 {
		e.initBuffer[e.count-1] = x
		if e.count == 5 {
			e.initialize()
		}
		return
	}

	var k int
	switch {
	case x < e.q[0]:
		e.q[0] = x
		k = 0
	case x >= e.q[4]:
		e.q[4] = x
		k = 3
	default:
		for k = 0; k < 4; k++ {
			if e.q[k] <= x && x < e.q[k+1] {
				break
			}
		}
	}

	for i := k + 1; i < 5; i++ {
		e.n[i]++
	}
	for i := 0; i < 5; i++ {
		e.np[i] += e.dn[i]
	}

	for i := 1; i < 4; i++ {
		d := e.np[i] - float64(e.n[i])
		if (d >= 1 && e.n[i+1]-e.n[i] > 1) || (d <= -1 && e.n[i-1]-e.n[i] < -1) {
			sign := 1
			if d < 0 {
				sign = -1
			}
			qPrime := e.parabolic(i, sign)
			if e.q[i-1] < qPrime && qPrime < e.q[i+1] {
				e.q[i] = qPrime
			} else {
				e.q[i] = e.linear(i, sign)
			}
			e.n[i] += sign
		}
	}
}

func (e *quantileEstimator) initialize() {
	for i := 1; i < 5; i++ {
		key := e.initBuffer[i]
		j := i - 1
		for j >= 0 && e.initBuffer[j] > key {
			e.initBuffer[j+1] = e.initBuffer[j]
			j--
		}
		e.initBuffer[j+1] = key
	}
	for i := 0; i < 5; i++ {
		e.q[i] = e.initBuffer[i]
		e.n[i] = i
	}
	e.np = [5]float64{0, 2 * e.p, 4 * e.p, 2 + 2*e.p, 4}
	e.initialized = true
}

func (e *quantileEstimator) parabolic(i, d int) float64 {
	df := float64(d)
	ni := float64(e.n[i])
	niPrev := float64(e.n[i-1])
	niNext := float64(e.n[i+1])
	term1 := df / (niNext - niPrev)
	term2 := (ni - niPrev + df) * (e.q[i+1] - e.q[i]) / (niNext - ni)
	term3 := (niNext - ni - df) * (e.q[i] - e.q[i-1]) / (ni - niPrev)
	return e.q[i] + term1*(term2+term3)
}

func (e *quantileEstimator) linear(i, d int) float64 {
	if d == 1 {
		return e.q[i] + (e.q[i+1]-e.q[i])/float64(e.n[i+1]-e.n[i])
	}
	return e.q[i] - (e.q[i]-e.q[i-1])/float64(e.n[i]-e.n[i-1])
}

func (e *quantileEstimator) value() float64 {
	if e.count == 0 {
		return 0
	}
	if e.count < 5 {
		sorted := make([]float64, e.count)
		copy(sorted, e.initBuffer[:e.count])
		for i := 1; i < e.count; i++ {
			key := sorted[i]
			j := i - 1
			for j >= 0 && sorted[j] > key {
				sorted[j+1] = sorted[j]
				j--
			}
			sorted[j+1] = key
		}
		idx := int(float64(e.count-1) * e.p)
		if idx >= e.count {
			idx = e.count - 1
		}
		return sorted[idx]
	}
	return e.q[2]
}

// Metrics is a point-in-time snapshot of task latency percentiles,
// populated only when a Pool is created with WithMetrics(true).
type Metrics struct {
	Count        int
	WaitP50      float64
	WaitP90      float64
	WaitP99      float64
	RunP50       float64
	RunP90       float64
	RunP99       float64
}

// poolMetrics owns the live estimators the manager goroutine updates
// after every completed task; Pool.Metrics reads them from the caller's
// goroutine, and both happen only under the pool's informGate lock.
type poolMetrics struct {
	waitP50, waitP90, waitP99 *quantileEstimator
	runP50, runP90, runP99   *quantileEstimator
	count                     int
}

func newPoolMetrics() *poolMetrics {
	return &poolMetrics{
		waitP50: newQuantileEstimator(0.50),
		waitP90: newQuantileEstimator(0.90),
		waitP99: newQuantileEstimator(0.99),
		runP50:  newQuantileEstimator(0.50),
		runP90:  newQuantileEstimator(0.90),
		runP99:  newQuantileEstimator(0.99),
	}
}

func (m *poolMetrics) observe(waitSeconds, runSeconds float64) {
	m.count++
	m.waitP50.update(waitSeconds)
	m.waitP90.update(waitSeconds)
	m.waitP99.update(waitSeconds)
	m.runP50.update(runSeconds)
	m.runP90.update(runSeconds)
	m.runP99.update(runSeconds)
}

func (m *poolMetrics) snapshot() Metrics {
	return Metrics{
		Count:   m.count,
		WaitP50: clampNonNegative(m.waitP50.value()),
		WaitP90: clampNonNegative(m.waitP90.value()),
		WaitP99: clampNonNegative(m.waitP99.value()),
		RunP50:  clampNonNegative(m.runP50.value()),
		RunP90:  clampNonNegative(m.runP90.value()),
		RunP99:  clampNonNegative(m.runP99.value()),
	}
}

func clampNonNegative(v float64) float64 {
	return math.Max(0, v)
}
