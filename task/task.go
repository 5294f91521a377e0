package task

import "context"

// Run executes a list of tasks in parallel, returns the first error encountered or nil if all tasks pass.
// It returns early with ctx.Err() when the context ends before the tasks do.
func Run(ctx context.Context, tasks ...func() error) error {
	n := len(tasks)
	done := make(chan error, n)

	for _, task := range tasks {
		go func(f func() error) {
			done <- f()
		}(task)
	}

	for i := 0; i < n; i++ {
		select {
		case err := <-done:
			if err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
