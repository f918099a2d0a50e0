package unchecked_test

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/jmgilman/go/unchecked"
)

func ExampleFunction() {
	atoi := unchecked.Function(strconv.Atoi)
	fmt.Println(atoi("42") + 1)
	// Output: 43
}

func ExampleFunction_recover() {
	atoi := unchecked.Function(strconv.Atoi)

	defer func() {
		err := recover().(error)
		var numErr *strconv.NumError
		fmt.Println(errors.As(err, &numErr), numErr.Num)
		fmt.Println(err)
	}()

	atoi("forty-two")
	// Output:
	// true forty-two
	// [UNCHECKED] strconv.Atoi: parsing "forty-two": invalid syntax
}

func ExampleExpect() {
	errQuota := errors.New("quota exceeded")
	fetch := unchecked.Function(func(id int) (string, error) {
		if id > 10 {
			return "", errQuota
		}
		return "", fmt.Errorf("fetch %d: %w", id, errors.ErrUnsupported)
	}, unchecked.Expect(unchecked.Sentinel(errQuota)))

	classify := func(id int) (code unchecked.Code) {
		defer func() {
			code, _ = unchecked.GetCode(recover().(error))
		}()
		fetch(id)
		return ""
	}

	fmt.Println(classify(11))
	fmt.Println(classify(1))
	// Output:
	// UNCHECKED
	// UNEXPECTED
}

func ExamplePredicate() {
	isPositive := unchecked.Predicate(func(s string) (bool, error) {
		n, err := strconv.Atoi(s)
		return n > 0, err
	})

	fmt.Println(slices.IndexFunc([]string{"-3", "0", "7"}, isPositive))
	// Output: 2
}

func ExampleSupplier() {
	load := sync.OnceValue(unchecked.Supplier(func() (map[string]string, error) {
		return map[string]string{"region": "eu-west-1"}, nil
	}))

	fmt.Println(load()["region"])
	// Output: eu-west-1
}

func ExampleRequireNonNil() {
	var endpoint *string
	_, err := unchecked.RequireNonNil(endpoint, errors.New)
	fmt.Println(err)

	_, err = unchecked.RequireNonNilMessage(endpoint, "endpoint is required", errors.New)
	fmt.Println(err)
	// Output:
	// Illegal null value
	// endpoint is required
}

func ExampleReplace() {
	_, cause := strconv.Atoi("x")
	err := unchecked.Replace(cause, func(e *strconv.NumError) error {
		return fmt.Errorf("invalid number %q", e.Num)
	})

	fmt.Println(err)
	// Output: invalid number "x"
}

func ExampleInterrupted() {
	defer unchecked.ClearInterrupted()

	wait := unchecked.Consumer(func(string) error {
		return unchecked.ErrInterrupted
	})

	func() {
		defer func() { _ = recover() }()
		wait("job-1")
	}()

	fmt.Println(unchecked.Interrupted())
	// Output: true
}
