package classify

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of one classification pass. Every input node is
// represented exactly once, either as a record or as a failure.
type Result struct {
	Records  []model.NodeRecord
	Failures []*NodeError
}

// Total returns the number of nodes the pass covered.
func (r *Result) Total() int {
	return len(r.Records) + len(r.Failures)
}

type outcome struct {
	rec model.NodeRecord
	err *NodeError
}

// Classify builds a record for every node in parallel and returns once all
// nodes are done. Records and failures keep the input order. concurrency
// bounds the number of nodes in flight; zero or less means GOMAXPROCS.
func Classify(ctx context.Context, nodes []*model.Node, concurrency int) (*Result, error) {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	// each task writes only its own slot
	outcomes := make([]outcome, len(nodes))

	for i, n := range nodes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := BuildRecord(n)
			if err != nil {
				var nerr *NodeError
				if !errors.As(err, &nerr) {
					nerr = &NodeError{Node: n.Name, Err: err}
				}
				slog.Debug("node classification failed", "node", n.Name, "error", err)
				outcomes[i] = outcome{err: nerr}
				return nil
			}
			outcomes[i] = outcome{rec: rec}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Records: make([]model.NodeRecord, 0, len(nodes)),
	}
	for _, o := range outcomes {
		if o.err != nil {
			res.Failures = append(res.Failures, o.err)
			continue
		}
		res.Records = append(res.Records, o.rec)
	}

	slog.Debug("classification complete", "nodes", len(nodes), "records", len(res.Records), "failures", len(res.Failures))
	return res, nil
}
