package dateconv

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_ConcurrentReadWrite(t *testing.T) {
	t.Parallel()
	r := newAnimalRegistry(t)
	r.Register(animalT, stringT, func(v any) (any, error) { return "animal:" + v.(Animal).Name, nil })

	var start sync.WaitGroup
	start.Add(1)

	var done atomic.Int32
	readers := runtime.GOMAXPROCS(0) * 3
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	errs := make(chan string, readers*4)

	// Writer: keeps replacing an unrelated key and redeclaring ancestry while readers convert
	go func() {
		defer wg.Done()
		start.Wait()
		for i := 0; i < 500; i++ {
			r.Register(catT, stringT, constant("cat"))
			if err := r.DeclareSubtype(puppyT, dogT); err != nil {
				errs <- fmt.Sprintf("declare error: %v", err)
				return
			}
			if done.Load() == 1 {
				return
			}
		}
	}()

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			start.Wait()
			for j := 0; j < 200; j++ {
				out, err := r.Convert(Puppy{Dog: Dog{Animal: Animal{Name: "p"}}}, stringT)
				if err != nil {
					errs <- fmt.Sprintf("convert error: %v", err)
					return
				}
				if out != "animal:p" {
					errs <- fmt.Sprintf("unexpected result: %v", out)
					return
				}
			}
		}()
	}

	start.Done()
	wg.Wait()
	done.Store(1)
	close(errs)
	for msg := range errs {
		t.Fatalf("concurrent convert failed: %s", msg)
	}

	out, err := r.Convert(Cat{}, stringT)
	require.NoError(t, err)
	assert.Equal(t, "cat", out)
}

func TestRegister_ConcurrentWriters_NoLostUpdates(t *testing.T) {
	t.Parallel()
	r := New()
	type k0 struct{}
	const writers = 32

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		i := i
		go func() {
			defer wg.Done()
			// distinct targets: array types of different lengths
			to := reflect.ArrayOf(i, TypeOf[byte]())
			r.Register(TypeOf[k0](), to, constant(fmt.Sprint(i)))
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("timeout waiting for concurrent writers")
	}
	assert.Len(t, r.Keys(), writers)
}
