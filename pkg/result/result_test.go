package result

import (
	"errors"
	"strconv"
	"testing"
)

func TestOkAndErrDiscrimination(t *testing.T) {
	ok := Ok[int, string](7)
	if !ok.IsOk() || ok.IsErr() {
		t.Fatalf("Ok(7): IsOk = %v, IsErr = %v", ok.IsOk(), ok.IsErr())
	}
	bad := Err[int, string]("boom")
	if bad.IsOk() || !bad.IsErr() {
		t.Fatalf("Err: IsOk = %v, IsErr = %v", bad.IsOk(), bad.IsErr())
	}
}

func TestMap_FunctorIdentity(t *testing.T) {
	r := Ok[int, string](42)
	mapped := Map(r, func(v int) int { return v })
	if mapped.Unwrap() != 42 {
		t.Fatalf("map identity = %d, want 42", mapped.Unwrap())
	}
}

func TestMap_FunctorComposition(t *testing.T) {
	double := func(v int) int { return v * 2 }
	inc := func(v int) int { return v + 1 }

	r := Ok[int, string](10)
	composed := Map(r, func(v int) int { return inc(double(v)) })
	chained := Map(Map(r, double), inc)

	if composed.Unwrap() != chained.Unwrap() {
		t.Fatalf("composed = %d, chained = %d", composed.Unwrap(), chained.Unwrap())
	}
}

func TestMap_PassesErrThrough(t *testing.T) {
	r := Err[int, string]("nope")
	mapped := Map(r, func(v int) int { return v * 2 })
	if !mapped.IsErr() || mapped.UnwrapErr() != "nope" {
		t.Fatalf("mapped err = %v, want nope", mapped)
	}
}

func TestMapErr_TransformsOnlyErr(t *testing.T) {
	upper := func(e string) string { return "E:" + e }

	if got := MapErr(Err[int, string]("bad"), upper); got.UnwrapErr() != "E:bad" {
		t.Fatalf("mapErr = %q, want E:bad", got.UnwrapErr())
	}
	if got := MapErr(Ok[int, string](5), upper); got.Unwrap() != 5 {
		t.Fatalf("mapErr on ok = %d, want 5", got.Unwrap())
	}
}

func TestFlatMap_MonadLeftIdentity(t *testing.T) {
	f := func(v int) Result[string, string] { return Ok[string, string](strconv.Itoa(v)) }

	left := FlatMap(Ok[int, string](9), f)
	direct := f(9)
	if left.Unwrap() != direct.Unwrap() {
		t.Fatalf("left identity: %q != %q", left.Unwrap(), direct.Unwrap())
	}
}

func TestFlatMap_MonadRightIdentity(t *testing.T) {
	r := Ok[int, string](9)
	chained := FlatMap(r, Ok[int, string])
	if chained.Unwrap() != r.Unwrap() {
		t.Fatalf("right identity: %d != %d", chained.Unwrap(), r.Unwrap())
	}
}

func TestFlatMap_Associativity(t *testing.T) {
	f := func(v int) Result[int, string] { return Ok[int, string](v * 2) }
	g := func(v int) Result[int, string] { return Ok[int, string](v + 3) }

	r := Ok[int, string](4)
	left := FlatMap(FlatMap(r, f), g)
	right := FlatMap(r, func(v int) Result[int, string] { return FlatMap(f(v), g) })

	if left.Unwrap() != right.Unwrap() {
		t.Fatalf("associativity: %d != %d", left.Unwrap(), right.Unwrap())
	}
}

func TestFlatMap_ShortCircuitsOnFirstErr(t *testing.T) {
	calls := 0
	f := func(v int) Result[int, string] {
		calls++
		return Ok[int, string](v)
	}
	got := FlatMap(Err[int, string]("stop"), f)
	if calls != 0 {
		t.Fatalf("fn called %d times on Err input", calls)
	}
	if got.UnwrapErr() != "stop" {
		t.Fatalf("err = %q, want stop", got.UnwrapErr())
	}
}

func TestMatch_FoldsBothVariants(t *testing.T) {
	describe := func(r Result[int, string]) string {
		return Match(r,
			func(v int) string { return "ok:" + strconv.Itoa(v) },
			func(e string) string { return "err:" + e })
	}
	if got := describe(Ok[int, string](3)); got != "ok:3" {
		t.Fatalf("match ok = %q", got)
	}
	if got := describe(Err[int, string]("x")); got != "err:x" {
		t.Fatalf("match err = %q", got)
	}
}

func TestUnwrap_PanicsOnErr(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Unwrap on Err did not panic")
		}
	}()
	Err[int, string]("boom").Unwrap()
}

func TestUnwrapErr_PanicsOnOk(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("UnwrapErr on Ok did not panic")
		}
	}()
	Ok[int, string](1).UnwrapErr()
}

func TestUnwrapOr(t *testing.T) {
	if got := Ok[int, string](8).UnwrapOr(99); got != 8 {
		t.Fatalf("UnwrapOr on ok = %d, want 8", got)
	}
	if got := Err[int, string]("e").UnwrapOr(99); got != 99 {
		t.Fatalf("UnwrapOr on err = %d, want 99", got)
	}
}

func TestAll_CollectsInOrder(t *testing.T) {
	rs := []Result[int, string]{
		Ok[int, string](1),
		Ok[int, string](2),
		Ok[int, string](3),
	}
	got := All(rs).Unwrap()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("All = %v, want [1 2 3]", got)
	}
}

func TestAll_ShortCircuitsOnFirstErrLeftToRight(t *testing.T) {
	rs := []Result[int, string]{
		Ok[int, string](1),
		Err[int, string]("first"),
		Err[int, string]("second"),
	}
	got := All(rs)
	if !got.IsErr() || got.UnwrapErr() != "first" {
		t.Fatalf("All err = %v, want first", got)
	}
}

func TestAll_EmptyInputIsOkEmpty(t *testing.T) {
	got := All([]Result[int, string]{})
	if !got.IsOk() || len(got.Unwrap()) != 0 {
		t.Fatalf("All(empty) = %v, want Ok([])", got)
	}
}

func TestFromPtr(t *testing.T) {
	onNil := func() string { return "missing" }

	zero := 0
	if got := FromPtr(&zero, onNil); !got.IsOk() || got.Unwrap() != 0 {
		t.Fatalf("FromPtr(&0) = %v, want Ok(0)", got)
	}

	empty := ""
	if got := FromPtr(&empty, onNil); !got.IsOk() {
		t.Fatalf("FromPtr(&\"\") should be Ok")
	}

	if got := FromPtr[int](nil, onNil); !got.IsErr() || got.UnwrapErr() != "missing" {
		t.Fatalf("FromPtr(nil) = %v, want Err(missing)", got)
	}
}

func TestTryCatch_ConvertsPanicToErr(t *testing.T) {
	got := TryCatch(func() int {
		panic(errors.New("kaboom"))
	}, func(v any) string {
		if err, ok := v.(error); ok {
			return err.Error()
		}
		return "unknown"
	})
	if !got.IsErr() || got.UnwrapErr() != "kaboom" {
		t.Fatalf("TryCatch = %v, want Err(kaboom)", got)
	}
}

func TestTryCatch_NormalReturnIsOk(t *testing.T) {
	got := TryCatch(func() int { return 11 }, func(any) string { return "?" })
	if got.Unwrap() != 11 {
		t.Fatalf("TryCatch = %d, want 11", got.Unwrap())
	}
}

func TestCombinatorsDoNotMutateInput(t *testing.T) {
	original := Ok[int, string](5)
	_ = Map(original, func(v int) int { return v * 100 })
	_ = FlatMap(original, func(v int) Result[int, string] { return Err[int, string]("x") })
	if original.Unwrap() != 5 {
		t.Fatalf("original mutated: %d", original.Unwrap())
	}
}
