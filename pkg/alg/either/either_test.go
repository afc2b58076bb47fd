package either

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/alg/pkg/alg/option"
)

func TestConstructionAndPredicates(t *testing.T) {
	t.Parallel()

	l := Left[string, int]("oops")
	r := Right[string](7)

	if !l.IsLeft() || l.IsRight() {
		t.Fatal("Left should report the left side active")
	}
	if !r.IsRight() || r.IsLeft() {
		t.Fatal("Right should report the right side active")
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	var path string
	Left[string, int]("e").Match(
		func(l string) { path = "left:" + l },
		func(r int) { path = "right:" + strconv.Itoa(r) })
	if path != "left:e" {
		t.Fatalf("expected left branch, got %q", path)
	}

	Right[string](3).Match(
		func(l string) { path = "left:" + l },
		func(r int) { path = "right:" + strconv.Itoa(r) })
	if path != "right:3" {
		t.Fatalf("expected right branch, got %q", path)
	}
}

func TestMatchThen(t *testing.T) {
	t.Parallel()

	label := func(e Either[string, int]) string {
		return MatchThen(e,
			func(l string) string { return "L" + l },
			func(r int) string { return "R" + strconv.Itoa(r) })
	}

	if got := label(Left[string, int]("x")); got != "Lx" {
		t.Fatalf("expected Lx, got %q", got)
	}
	if got := label(Right[string](4)); got != "R4" {
		t.Fatalf("expected R4, got %q", got)
	}
}

func TestUnsafeMatchPropagatesBranchError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	err := Left[int, string](1).UnsafeMatch(
		func(int) error { return boom },
		func(string) error { return nil })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	_, err = UnsafeMatchThen(Right[int]("v"),
		func(int) (int, error) { return 0, nil },
		func(string) (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestMapSides(t *testing.T) {
	t.Parallel()

	l := Left[int, string](2)
	r := Right[int]("v")

	if got := MapLeft(l, strconv.Itoa); !got.Equals(Left[string, string]("2")) {
		t.Fatalf("expected Left(\"2\"), got %v", got)
	}
	if got := MapLeft(r, strconv.Itoa); !got.Equals(Right[string]("v")) {
		t.Fatalf("right value must pass through MapLeft, got %v", got)
	}

	if got := MapRight(r, strings.ToUpper); !got.Equals(Right[int]("V")) {
		t.Fatalf("expected Right(\"V\"), got %v", got)
	}
	if got := MapRight(l, strings.ToUpper); !got.Equals(Left[int, string](2)) {
		t.Fatalf("left value must pass through MapRight, got %v", got)
	}
}

func TestBimapEvaluatesOnlyActiveSide(t *testing.T) {
	t.Parallel()

	leftCalls, rightCalls := 0, 0
	onLeft := func(l int) string { leftCalls++; return strconv.Itoa(l) }
	onRight := func(r string) string { rightCalls++; return strings.ToUpper(r) }

	if got := Bimap(Left[int, string](5), onLeft, onRight); !got.Equals(Left[string, string]("5")) {
		t.Fatalf("expected Left(\"5\"), got %v", got)
	}
	if got := Bimap(Right[int]("v"), onLeft, onRight); !got.Equals(Right[string]("V")) {
		t.Fatalf("expected Right(\"V\"), got %v", got)
	}
	if leftCalls != 1 || rightCalls != 1 {
		t.Fatalf("each function must run exactly once, got %d/%d", leftCalls, rightCalls)
	}
}

func TestAndThenSides(t *testing.T) {
	t.Parallel()

	parse := func(l string) Either[string, int] {
		if n, err := strconv.Atoi(l); err == nil {
			return Right[string](n)
		}
		return Left[string, int](l)
	}

	// left becomes right when the bound function says so
	if got := LeftAndThen(Left[string, int]("7"), parse); !got.Equals(Right[string](7)) {
		t.Fatalf("expected Right(7), got %v", got)
	}
	if got := LeftAndThen(Left[string, int]("x"), parse); !got.Equals(Left[string, int]("x")) {
		t.Fatalf("expected Left(\"x\"), got %v", got)
	}
	if got := LeftAndThen(Right[string](1), parse); !got.Equals(Right[string](1)) {
		t.Fatalf("right value must pass through LeftAndThen, got %v", got)
	}

	fail := func(r int) Either[string, string] {
		return Left[string, string]("rejected " + strconv.Itoa(r))
	}
	if got := RightAndThen(Right[string](3), fail); !got.Equals(Left[string, string]("rejected 3")) {
		t.Fatalf("expected Left(\"rejected 3\"), got %v", got)
	}
	if got := RightAndThen(Left[string, int]("e"), fail); !got.Equals(Left[string, string]("e")) {
		t.Fatalf("left value must pass through RightAndThen, got %v", got)
	}
}

func TestToOptionAndUnwrapOr(t *testing.T) {
	t.Parallel()

	l := Left[string, int]("e")
	r := Right[string](9)

	if got := l.LeftToOption(); !got.Equals(option.Some("e")) {
		t.Fatalf("expected Some(\"e\"), got %v", got)
	}
	if got := r.LeftToOption(); !got.Equals(option.None[string]()) {
		t.Fatalf("expected None, got %v", got)
	}
	if got := r.RightToOption(); !got.Equals(option.Some(9)) {
		t.Fatalf("expected Some(9), got %v", got)
	}
	if got := l.RightToOption(); !got.Equals(option.None[int]()) {
		t.Fatalf("expected None, got %v", got)
	}

	if got := l.UnwrapLeftOr("d"); got != "e" {
		t.Fatalf("expected e, got %q", got)
	}
	if got := r.UnwrapLeftOr("d"); got != "d" {
		t.Fatalf("expected default, got %q", got)
	}
	if got := r.UnwrapRightOr(0); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := l.UnwrapRightOr(0); got != 0 {
		t.Fatalf("expected default, got %d", got)
	}
}

func TestWhenSides(t *testing.T) {
	t.Parallel()

	var seen []string
	Left[string, int]("e").WhenLeft(func(l string) { seen = append(seen, "l:"+l) })
	Left[string, int]("e").WhenRight(func(r int) { seen = append(seen, "r") })
	Right[string](1).WhenRight(func(r int) { seen = append(seen, "r:"+strconv.Itoa(r)) })
	Right[string](1).WhenLeft(func(l string) { seen = append(seen, "l") })

	if len(seen) != 2 || seen[0] != "l:e" || seen[1] != "r:1" {
		t.Fatalf("expected only active sides to fire, got %v", seen)
	}
}

func TestFlip(t *testing.T) {
	t.Parallel()

	l := Left[int, string](0)
	if got := l.Flip(); !got.Equals(Right[string](0)) {
		t.Fatalf("expected Right(0), got %v", got)
	}
	if got := l.Flip().Flip(); !got.Equals(l) {
		t.Fatalf("double flip must restore the original, got %v", got)
	}

	r := Right[int]("v")
	if got := r.Flip(); !got.Equals(Left[string, int]("v")) {
		t.Fatalf("expected Left(\"v\"), got %v", got)
	}
}

func TestCollapse(t *testing.T) {
	t.Parallel()

	render := func(v any) string { return "got " + strconv.Itoa(v.(int)) }

	if got := CollapseThen(Left[int, int](1), render); got != "got 1" {
		t.Fatalf("unexpected collapse of left: %q", got)
	}
	if got := CollapseThen(Right[int](2), render); got != "got 2" {
		t.Fatalf("unexpected collapse of right: %q", got)
	}

	var seen any
	Left[int, int](5).Collapse(func(v any) { seen = v })
	if seen != 5 {
		t.Fatalf("expected 5, got %v", seen)
	}
}

func TestEqualsAndString(t *testing.T) {
	t.Parallel()

	if !Left[int, int](1).Equals(Left[int, int](1)) {
		t.Fatal("equal left payloads should be equal")
	}
	if Left[int, int](1).Equals(Left[int, int](2)) {
		t.Fatal("different left payloads should not be equal")
	}
	// same payload on different sides is never equal
	if Left[int, int](1).Equals(Right[int](1)) {
		t.Fatal("left and right are distinct cases")
	}

	if got := Left[string, int]("e").String(); got != "Either.left(e)" {
		t.Fatalf("unexpected rendering: %s", got)
	}
	if got := Right[string](3).String(); got != "Either.right(3)" {
		t.Fatalf("unexpected rendering: %s", got)
	}
}
