package hilo

// ptr and testCases mirror the teacher's own test helpers
// (hikitani/easylang's ast_test.go), reused here unchanged.

func ptr[T any](v T) *T {
	return &v
}

type testCases[T any] []struct {
	Name     string
	Code     string
	Expected T
}
