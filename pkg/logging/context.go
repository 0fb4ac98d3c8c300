package logging

import "context"

type ctxKey struct{}

// ContextWith returns a context whose entries carry the given details
// after the ones already attached to ctx. Nil details are dropped.
func ContextWith(ctx context.Context, ds ...Detail) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	prev := detailsFrom(ctx)
	all := make([]Detail, len(prev), len(prev)+len(ds))
	copy(all, prev)
	for _, d := range ds {
		if d != nil {
			all = append(all, d)
		}
	}
	if len(all) == len(prev) {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, all)
}

func detailsFrom(ctx context.Context) []Detail {
	if ctx == nil {
		return nil
	}
	ds, _ := ctx.Value(ctxKey{}).([]Detail)
	return ds
}
