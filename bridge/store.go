package bridge

import (
	"context"
	"lost-found/remote"
)

// ReadOnce performs a one-shot read of path and waits for its snapshot.
func ReadOnce(ctx context.Context, store remote.Store, op Op, path string) (remote.Snapshot, error) {
	return Await(ctx, op, func(r Resolver[remote.Snapshot]) {
		store.ReadOnce(path, remote.EventListener{
			OnData:      r.Resolve,
			OnCancelled: r.Reject,
		})
	})
}

func Write(ctx context.Context, store remote.Store, op Op, path string, value any) error {
	_, err := Await(ctx, op, func(r Resolver[struct{}]) {
		store.Write(path, value, completion(r))
	})
	return err
}

func Update(ctx context.Context, store remote.Store, op Op, values map[string]any) error {
	_, err := Await(ctx, op, func(r Resolver[struct{}]) {
		store.Update(values, completion(r))
	})
	return err
}

func Delete(ctx context.Context, store remote.Store, op Op, path string) error {
	_, err := Await(ctx, op, func(r Resolver[struct{}]) {
		store.Delete(path, completion(r))
	})
	return err
}

func completion(r Resolver[struct{}]) remote.CompletionListener {
	return func(err error) {
		if err != nil {
			r.Reject(err)
			return
		}
		r.Resolve(struct{}{})
	}
}
