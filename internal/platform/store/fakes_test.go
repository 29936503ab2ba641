package store

import (
	"context"
	"errors"
)

// fakeCH is an in-memory warehouse seam that counts calls
type fakeCH struct {
	selectErr error
	pingErr   error
	selects   int
	closed    bool
}

func (f *fakeCH) Insert(context.Context, string, any) error { return nil }
func (f *fakeCH) Query(context.Context, string, ...any) (Rows, error) {
	return nil, errors.New("not used")
}

func (f *fakeCH) Select(_ context.Context, _ any, _ string, _ ...any) error {
	f.selects++
	return f.selectErr
}
func (f *fakeCH) Close() error               { f.closed = true; return nil }
func (f *fakeCH) Ping(context.Context) error { return f.pingErr }

// fakePG satisfies RowQuerier and Pinger
type fakePG struct {
	pingErr error
	closed  bool
}

func (f *fakePG) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, nil }
func (f *fakePG) Query(context.Context, string, ...any) (Rows, error)      { return nil, nil }
func (f *fakePG) QueryRow(context.Context, string, ...any) Row             { return nil }

func (f *fakePG) Ping(context.Context) error { return f.pingErr }
func (f *fakePG) Close() error               { f.closed = true; return nil }

// sliceRows serves fixed rows through the Rows contract
type sliceRows struct {
	data   [][]any
	idx    int
	err    error
	closed bool
}

func (r *sliceRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *sliceRows) Scan(dest ...any) error {
	cur := r.data[r.idx-1]
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = cur[i].(string)
		case *uint64:
			*d = cur[i].(uint64)
		}
	}
	return nil
}
func (r *sliceRows) Err() error        { return r.err }
func (r *sliceRows) Close()            { r.closed = true }
func (r *sliceRows) Columns() []string { return nil }
