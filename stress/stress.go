// Package stress drives flist.List instances through randomized
// operation sequences and cross-checks every list against a plain
// slice model. Workers run in parallel but never share a list.
package stress

import (
	"context"
	"math/rand"
	"runtime"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/percona-lab/forward-list/errors"
	"github.com/percona-lab/forward-list/flist"
	"github.com/percona-lab/forward-list/log"
	"github.com/percona-lab/forward-list/metrics"
)

// Config tunes a stress run.
type Config struct {
	// Workers is the number of independent workers. Defaults to
	// runtime.NumCPU().
	Workers int
	// OpsPerWorker is the number of operations each worker performs.
	OpsPerWorker int64
	// Seed is the base RNG seed. Worker i uses Seed+i, so a run is
	// reproducible from its seed alone.
	Seed int64
	// CheckEvery is the number of operations between full model
	// cross-checks. Defaults to 64.
	CheckEvery int64
	// MaxLen caps the list length a worker grows. Defaults to 4096.
	MaxLen int
}

func (cfg *Config) setDefaults() {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.OpsPerWorker <= 0 {
		cfg.OpsPerWorker = 1_000_000
	}
	if cfg.CheckEvery <= 0 {
		cfg.CheckEvery = 64
	}
	if cfg.MaxLen <= 0 {
		cfg.MaxLen = 4096
	}
}

// Report summarizes a completed run.
type Report struct {
	Workers  int
	Ops      int64
	Duration time.Duration
}

// Run executes the stress configuration and returns a summary. It
// returns an error on the first divergence between a list and its
// model, canceling the remaining workers.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	cfg.setDefaults()

	ctx = log.WithAttrs(ctx, log.Scope("stress"), log.Seed(cfg.Seed))
	log.Infof(ctx, "Starting %d workers, %s ops each",
		cfg.Workers, humanize.Comma(cfg.OpsPerWorker))

	startedAt := time.Now()

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.NumCPU())

	for i := range cfg.Workers {
		grp.Go(func() error {
			w := newWorker(cfg, i)
			return w.run(log.WithAttrs(grpCtx, log.Worker(i)))
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, errors.Wrap(err, "stress worker")
	}

	rep := &Report{
		Workers:  cfg.Workers,
		Ops:      cfg.OpsPerWorker * int64(cfg.Workers),
		Duration: time.Since(startedAt),
	}

	log.Infof(ctx, "Completed %s ops in %s",
		humanize.Comma(rep.Ops), rep.Duration.Round(time.Millisecond))

	return rep, nil
}

// worker owns one list under test, a spare list exercised through
// Swap and Assign, and slice models mirroring both.
type worker struct {
	cfg Config
	rng *rand.Rand

	list  *flist.List[int64]
	model []int64

	spare      *flist.List[int64]
	spareModel []int64
}

func newWorker(cfg Config, id int) *worker {
	return &worker{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed + int64(id))), //nolint:gosec
		list:  flist.New[int64](),
		spare: flist.New[int64](),
	}
}

func (w *worker) run(ctx context.Context) error {
	// The lengths must be read at exit time, not when the defer is set up.
	defer func() {
		metrics.AddElementsLive(-(w.list.Len() + w.spare.Len()))
	}()

	for op := int64(1); op <= w.cfg.OpsPerWorker; op++ {
		if op%1024 == 0 && ctx.Err() != nil {
			log.Warn(ctx, "Canceled")
			return ctx.Err() //nolint:wrapcheck
		}

		if err := w.step(); err != nil {
			log.Error(ctx, err, "List diverged from model")
			return err
		}

		if op%w.cfg.CheckEvery == 0 {
			if err := w.verify(); err != nil {
				log.Error(ctx, err, "List diverged from model")
				return err
			}
		}

		if op%10_000_000 == 0 {
			log.Debugf(ctx, "Progress: %s ops", humanize.Comma(op))
		}
	}

	if err := w.verify(); err != nil {
		log.Error(ctx, err, "List diverged from model")
		return err
	}

	return nil
}

// step performs one random operation on the list and mirrors it on
// the model, checking the operation's own postconditions inline.
func (w *worker) step() error {
	switch c := w.rng.Intn(100); {
	case c < 25:
		w.pushFront()
	case c < 40:
		return w.popFront()
	case c < 65:
		w.insertAfter()
	case c < 80:
		return w.eraseAfter()
	case c < 88:
		return w.setValue()
	case c < 92:
		return w.cloneIndependence()
	case c < 95:
		w.assignSpare()
	case c < 98:
		w.swapSpare()
	default:
		w.clear()
	}

	return nil
}

func (w *worker) pushFront() {
	metrics.AddOp("push_front")

	if w.list.Len() >= w.cfg.MaxLen {
		return
	}

	v := w.rng.Int63()
	w.list.PushFront(v)
	w.model = slices.Insert(w.model, 0, v)
	metrics.AddElementsLive(1)
}

func (w *worker) popFront() error {
	metrics.AddOp("pop_front")

	if w.list.IsEmpty() {
		return nil
	}

	got := w.list.PopFront()
	want := w.model[0]
	w.model = slices.Delete(w.model, 0, 1)
	metrics.AddElementsLive(-1)

	if got != want {
		return errors.Errorf("PopFront: got %d, want %d", got, want)
	}

	return nil
}

func (w *worker) insertAfter() {
	metrics.AddOp("insert_after")

	if w.list.Len() >= w.cfg.MaxLen {
		return
	}

	v := w.rng.Int63()
	k := w.rng.Intn(w.list.Len() + 1)
	w.list.InsertAfter(w.at(k), v)
	w.model = slices.Insert(w.model, k, v)
	metrics.AddElementsLive(1)
}

func (w *worker) eraseAfter() error {
	metrics.AddOp("erase_after")

	if w.list.IsEmpty() {
		return nil
	}

	k := w.rng.Intn(w.list.Len())
	next := w.list.EraseAfter(w.at(k))
	w.model = slices.Delete(w.model, k, k+1)
	metrics.AddElementsLive(-1)

	if k < len(w.model) {
		if got := next.Value(); got != w.model[k] {
			return errors.Errorf("EraseAfter: successor %d, want %d", got, w.model[k])
		}
	} else if next != w.list.End() {
		return errors.New("EraseAfter: expected end position")
	}

	return nil
}

func (w *worker) setValue() error {
	metrics.AddOp("set_value")

	if w.list.IsEmpty() {
		return nil
	}

	v := w.rng.Int63()
	k := w.rng.Intn(w.list.Len())
	it := w.at(k + 1) // k+1 steps from before-begin lands on element k
	it.Set(v)
	w.model[k] = v

	if got := it.Const().Value(); got != v {
		return errors.Errorf("Set: read back %d, want %d", got, v)
	}

	return nil
}

// cloneIndependence deep-copies the list, mutates the copy, and
// checks the original is untouched.
func (w *worker) cloneIndependence() error {
	metrics.AddOp("clone")

	c := w.list.Clone()
	c.PushFront(w.rng.Int63())
	c.PopFront()
	if !c.IsEmpty() {
		c.EraseAfter(c.BeforeBegin())
	}

	if got, want := w.list.Len(), len(w.model); got != want {
		return errors.Errorf("Clone mutation leaked: len %d, want %d", got, want)
	}
	if !slices.Equal(slices.Collect(w.list.All()), w.model) {
		return errors.New("Clone mutation leaked into original")
	}

	return nil
}

func (w *worker) assignSpare() {
	metrics.AddOp("assign")

	metrics.AddElementsLive(w.list.Len() - w.spare.Len())
	w.spare.Assign(w.list)
	w.spareModel = slices.Clone(w.model)
}

func (w *worker) swapSpare() {
	metrics.AddOp("swap")

	w.list.Swap(w.spare)
	w.model, w.spareModel = w.spareModel, w.model
}

func (w *worker) clear() {
	metrics.AddOp("clear")

	metrics.AddElementsLive(-w.list.Len())
	w.list.Clear()
	w.model = w.model[:0]
}

// at returns the position k steps after before-begin: k = 0 is
// before-begin itself, k = 1 the first element, and so on.
func (w *worker) at(k int) flist.Iterator[int64] {
	it := w.list.BeforeBegin()
	for range k {
		it = it.Next()
	}

	return it
}

// verify cross-checks the list against its model: size, traversal
// order through All and through const iterators, and the package
// comparison operations against their slice counterparts.
func (w *worker) verify() error {
	metrics.AddVerify()

	if err := w.doVerify(); err != nil {
		metrics.AddVerifyFailed()
		return err
	}

	return nil
}

func (w *worker) doVerify() error {
	if got, want := w.list.Len(), len(w.model); got != want {
		return errors.Errorf("Len: got %d, want %d", got, want)
	}
	if w.list.IsEmpty() != (len(w.model) == 0) {
		return errors.New("IsEmpty disagrees with model")
	}

	if got := slices.Collect(w.list.All()); !slices.Equal(got, w.model) {
		return errors.Errorf("traversal mismatch: got %v, want %v", got, w.model)
	}

	i := 0
	for it := w.list.CBegin(); it != w.list.CEnd(); it = it.Next() {
		if i >= len(w.model) {
			return errors.Errorf("const traversal passed the modeled length %d", len(w.model))
		}
		if it.Value() != w.model[i] {
			return errors.Errorf("const traversal: position %d got %d, want %d",
				i, it.Value(), w.model[i])
		}
		i++
	}
	if i != len(w.model) {
		return errors.Errorf("const traversal visited %d of %d elements", i, len(w.model))
	}

	ref := flist.Of(w.model...)
	if !flist.Equal(w.list, ref) {
		return errors.New("Equal: list != rebuilt model")
	}
	if c := flist.Compare(w.list, ref); c != 0 {
		return errors.Errorf("Compare: got %d against rebuilt model", c)
	}
	if got, want := flist.Compare(w.list, w.spare), slices.Compare(w.model, w.spareModel); got != want {
		return errors.Errorf("Compare against spare: got %d, want %d", got, want)
	}

	return nil
}
