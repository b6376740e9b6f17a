package rpn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/rpn"
)

func TestFixedArityOrder(t *testing.T) {
	// Arguments arrive in top-to-bottom order.
	op := rpn.FixedArity(3, func(args []float64) float64 {
		return args[0]*100 + args[1]*10 + args[2]
	})
	var st rpn.Stack
	st.Push(1)
	st.Push(2)
	st.Push(3)
	require.NoError(t, op.Apply(&st))
	top, ok := st.Top()
	require.True(t, ok)
	assert.Equal(t, 321.0, top)
	assert.Equal(t, 1, st.Len())
}

func TestFixedArityUnderflow(t *testing.T) {
	op := rpn.FixedArity(2, func(args []float64) float64 { return 0 })
	var st rpn.Stack
	st.Push(5)
	err := op.Apply(&st)
	var operr *rpn.OperandError
	require.ErrorAs(t, err, &operr)
	assert.Equal(t, 2, operr.Want)
	assert.Equal(t, 1, operr.Have)
	assert.Equal(t, 1, st.Len(), "no partial pop on underflow")
}

func TestWrappers(t *testing.T) {
	cases := []struct {
		name string
		op   rpn.Operator
		in   []float64
		r    float64
	}{
		{"binary", rpn.Binary(func(x, y float64) float64 { return x - y }), []float64{6, 2}, 4},
		{"unary", rpn.Unary(func(x float64) float64 { return -x }), []float64{3}, -3},
		{"nullary", rpn.Nullary(func() float64 { return 10 }), nil, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var st rpn.Stack
			for _, v := range c.in {
				st.Push(v)
			}
			require.NoError(t, c.op.Apply(&st))
			top, ok := st.Top()
			require.True(t, ok)
			assert.Equal(t, c.r, top)
			assert.Equal(t, 1, st.Len())
		})
	}
}

func TestRawFunc(t *testing.T) {
	popped := false
	op := rpn.RawFunc(func(st *rpn.Stack) error {
		_, popped = st.Pop()
		return nil
	})
	var st rpn.Stack
	st.Push(1)
	require.NoError(t, op.Apply(&st))
	assert.True(t, popped)
	assert.Equal(t, 0, st.Len())
}

func TestQuitOperator(t *testing.T) {
	var st rpn.Stack
	st.Push(1)
	err := rpn.Quit().Apply(&st)
	require.ErrorIs(t, err, rpn.ErrQuit)
	assert.Equal(t, 1, st.Len())
}

func TestRegistry(t *testing.T) {
	one := rpn.Nullary(func() float64 { return 1 })
	two := rpn.Nullary(func() float64 { return 2 })

	t.Run("insert-replace", func(t *testing.T) {
		r := rpn.Registry{}
		r.Insert("x", one)
		r.Insert("x", two)
		op, ok := r.Lookup("x")
		require.True(t, ok)
		var st rpn.Stack
		require.NoError(t, op.Apply(&st))
		top, _ := st.Top()
		assert.Equal(t, 2.0, top)
	})
	t.Run("merge-overrides", func(t *testing.T) {
		r := rpn.Registry{"x": one, "y": one}
		r.Merge(rpn.Registry{"x": two, "z": two})
		assert.Equal(t, []string{"x", "y", "z"}, r.Symbols())
		op, _ := r.Lookup("x")
		var st rpn.Stack
		require.NoError(t, op.Apply(&st))
		top, _ := st.Top()
		assert.Equal(t, 2.0, top, "merge source wins on conflict")
	})
	t.Run("lookup-miss", func(t *testing.T) {
		r := rpn.DefaultOperators()
		_, ok := r.Lookup("nope")
		assert.False(t, ok)
	})
	t.Run("clone-independent", func(t *testing.T) {
		r := rpn.Registry{"x": one}
		c := r.Clone()
		c.Insert("y", two)
		_, ok := r.Lookup("y")
		assert.False(t, ok)
	})
}

func TestMathOperators(t *testing.T) {
	cases := []struct {
		src string
		r   float64
	}{
		{"3 neg", -3},
		{"-3 abs", 3},
		{"9 sqrt", 3},
		{"1 exp", math.E},
		{"1 exp ln", 1},
		{"1000 log", 3},
		{"2 10 pow", 1024},
		{"0 sin", 0},
		{"0 cos", 1},
		{"0 tan", 0},
		{"pi", math.Pi},
		{"e", math.E},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			ops := rpn.DefaultOperators()
			ops.Merge(rpn.MathOperators())
			calc := rpn.NewWithOperators(ops)
			require.NoError(t, calc.Evaluate(c.src))
			top, err := calc.Top()
			require.NoError(t, err)
			assert.InDelta(t, c.r, top, 1e-9)
		})
	}
}

func TestStackOperators(t *testing.T) {
	eval := func(t *testing.T, src string) (*rpn.Calculator, error) {
		t.Helper()
		calc := rpn.NewWithOperators(rpn.StackOperators())
		return calc, calc.Evaluate(src)
	}

	t.Run("drop", func(t *testing.T) {
		calc, err := eval(t, "1 2 drop")
		require.NoError(t, err)
		top, err := calc.Top()
		require.NoError(t, err)
		assert.Equal(t, 1.0, top)
	})
	t.Run("dup", func(t *testing.T) {
		calc, err := eval(t, "4 dup -99 drop")
		require.NoError(t, err)
		top, err := calc.Top()
		require.NoError(t, err)
		assert.Equal(t, 4.0, top)
		require.NoError(t, calc.Evaluate("drop"))
		top, err = calc.Top()
		require.NoError(t, err)
		assert.Equal(t, 4.0, top, "dup leaves two copies")
	})
	t.Run("swap", func(t *testing.T) {
		calc, err := eval(t, "1 2 swap")
		require.NoError(t, err)
		top, err := calc.Top()
		require.NoError(t, err)
		assert.Equal(t, 1.0, top)
	})
	t.Run("clear", func(t *testing.T) {
		calc, err := eval(t, "1 2 clear")
		require.NoError(t, err)
		_, err = calc.Top()
		assert.ErrorAs(t, err, new(*rpn.EmptyStackError))
	})
	t.Run("underflow", func(t *testing.T) {
		for _, src := range []string{"drop", "dup", "1 swap"} {
			calc, err := eval(t, src)
			var operr *rpn.OperandError
			require.ErrorAs(t, err, &operr, src)
			if src == "1 swap" {
				top, err := calc.Top()
				require.NoError(t, err)
				assert.Equal(t, 1.0, top, "failed swap must not pop")
			}
		}
	})
}
