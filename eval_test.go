package mathex_test

import (
	"errors"
	"math"
	"testing"

	mathex "github.com/ExeVirus/MathEx"
)

func TestEval(t *testing.T) {
	args := []float64{0.1, 0.2, 0.3}
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"decimal", "2.5", 2.5},
		{"precedence", "1+2*3", 7},
		{"left-assoc-div", "8/4/2", 1},
		{"left-assoc-sub", "10-4-3", 3},
		{"rem", "7%3", 1},
		{"rem-sign", "(0-7)%3", -1},
		{"paren", "(1+2)*3", 9},
		{"eq", "3==3", 1},
		{"ne", "3!=3", 0},
		{"lt", "1<2", 1},
		{"le", "2<=1", 0},
		{"gt", "2>1", 1},
		{"ge", "1>=2", 0},
		{"rel-add", "1+1<3", 1},
		{"band", "12&10", 8},
		{"bxor", "12^10", 6},
		{"bor", "12|10", 14},
		{"band-bxor", "4^4&0", 4},
		{"bxor-bor", "1|2^2", 1},
		{"trunc", "2.9&3.9", 2},
		{"trunc-neg", "(0-2.9)|0", -2},
		{"trunc-nan", "log(0-1)&1", 0},
		{"trunc-nan-compl", "~log(0-1)", -1},
		{"trunc-saturate-pos", "pow(2,64)|0", float64(math.MaxInt64)},
		{"trunc-saturate-neg", "(0-pow(2,64))|0", float64(math.MinInt64)},
		{"logand-nan", "log(0-1)&&1", 1},
		{"not-zero", "!0", 1},
		{"not-nonzero", "!5", 0},
		{"not-not", "!!7", 1},
		{"compl", "~0", -1},
		{"compl-five", "~5", -6},
		{"logand", "1&&2", 1},
		{"logand-zero", "3&&0", 0},
		{"logor", "0||3", 1},
		{"logor-zero", "0||0", 0},
		{"logor-logand", "1||0&&0", 1},
		{"var-a", "A", 0.1},
		{"var-b", "B", 0.2},
		{"var-c", "C", 0.3},
		{"var-packed", "BA", 0.2},
		{"var-expr", "A+B", 0.1 + 0.2},
		{"call-max", "max(1,2)", 2},
		{"call-min", "min(1,2)", 1},
		{"call-pow", "pow(2,10)", 1024},
		{"call-abs", "abs(0-5)", 5},
		{"call-nested", "max(min(3,4),2)", 3},
		{"call-expr-arg", "max(1,!2)", 1},
		{"whitespace", " 1 + 2 * 3 ", 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := mathex.Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			r, err := a.Eval(args)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q gave wrong result: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		args []float64
		r    bool
	}{
		{"worked-example", "max(1,!2)", []float64{0.1, 0.2, 0.3}, true},
		{"zero", "0", nil, false},
		{"cancel", "2-2", nil, false},
		{"below-epsilon", "1/10000000000000000000", nil, false},
		{"negative-magnitude", "0-5", nil, true},
		{"nan-is-false", "log(0-1)", nil, false},
		{"no-vars-empty-args", "1+1", nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := mathex.Evaluate(c.src, c.args)
			if err != nil {
				t.Fatalf("%q failed: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q gave wrong result: want %t, got %t", c.src, c.r, r)
			}
		})
	}
}

func TestEvaluatePure(t *testing.T) {
	args := []float64{0.1, 0.2, 0.3}
	want, err := mathex.Evaluate("max(A,B)*C > A", args)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		got, err := mathex.Evaluate("max(A,B)*C > A", args)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("result changed between calls: want %t, got %t", want, got)
		}
	}
}

func TestEpsilonOption(t *testing.T) {
	if r, err := mathex.Evaluate("1", nil, mathex.Epsilon(2)); err != nil || r {
		t.Errorf("1 with epsilon 2: want false, got %t (err %v)", r, err)
	}
	if r, err := mathex.Evaluate("1", nil, mathex.Epsilon(0.5)); err != nil || !r {
		t.Errorf("1 with epsilon 0.5: want true, got %t (err %v)", r, err)
	}
}

func TestEvalNaN(t *testing.T) {
	for _, src := range []string{"asin(2)", "acos(2)", "log(0-1)", "atanh(2)", "0/0"} {
		t.Run(src, func(t *testing.T) {
			a, err := mathex.Parse(src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", src, err)
			}
			r, err := a.Eval(nil)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", src, err)
			}
			if !math.IsNaN(r) {
				t.Errorf("%q gave %g, not NaN", src, r)
			}
			b, err := a.Truth(nil)
			if err != nil {
				t.Fatalf("%q failed the truth test: %v", src, err)
			}
			if b {
				t.Errorf("NaN from %q resolved to true", src)
			}
		})
	}
}

func TestVarOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		args  []float64
		token string
		index uint64
	}{
		{"one-past", "D", []float64{0.1, 0.2, 0.3}, "D", 3},
		{"empty-args", "A", nil, "A", 0},
		{"short-circuit", "1+D*2", []float64{0.1}, "D", 3},
		{"packed", "AB", []float64{0.1, 0.2, 0.3}, "AB", 16},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := mathex.Evaluate(c.src, c.args)
			if err == nil {
				t.Fatalf("%q gave no error", c.src)
			}
			var verr *mathex.VarError
			if !errors.As(err, &verr) {
				t.Fatalf("error from %q was %#v, not *VarError", c.src, err)
			}
			if verr.Token != c.token || verr.Index != c.index || verr.Args != len(c.args) {
				t.Errorf("wrong error fields: want {%q %d %d}, got %+v", c.token, c.index, len(c.args), verr)
			}
		})
	}
}
