package pixgrid

import "testing"

func TestChain_TriangleScenario(t *testing.T) {
	chain := Chain{Translation(5, 1), Rotation(90), ReflectionY()}

	tests := []struct {
		name  string
		start Point
		steps []Point // after translate, rotate, reflect
	}{
		{"A", Pt(0, 0), []Point{Pt(5, 1), Pt(-1, 5), Pt(1, 5)}},
		{"B", Pt(1, 1), []Point{Pt(6, 2), Pt(-2, 6), Pt(2, 6)}},
		{"C", Pt(5, 2), []Point{Pt(10, 3), Pt(-3, 10), Pt(3, 10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chain.Steps(tt.start)
			if len(got) != len(tt.steps)+1 {
				t.Fatalf("Steps() returned %d points, want %d", len(got), len(tt.steps)+1)
			}
			if got[0] != tt.start {
				t.Errorf("Steps()[0] = %v, want %v", got[0], tt.start)
			}
			for i, want := range tt.steps {
				if got[i+1] != want {
					t.Errorf("after %v: got %v, want %v", chain[i], got[i+1], want)
				}
			}
			if final := chain.Apply(tt.start); final != tt.steps[len(tt.steps)-1] {
				t.Errorf("Apply(%v) = %v, want %v", tt.start, final, tt.steps[len(tt.steps)-1])
			}
		})
	}
}

func TestChain_ApplyAllDoesNotMutate(t *testing.T) {
	in := []Point{Pt(0, 0), Pt(1, 1), Pt(5, 2)}
	out := Chain{Translation(5, 1)}.ApplyAll(in)

	want := []Point{Pt(5, 1), Pt(6, 2), Pt(10, 3)}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("ApplyAll()[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	if in[0] != Pt(0, 0) || in[2] != Pt(5, 2) {
		t.Errorf("ApplyAll modified its input: %v", in)
	}
}

func TestChain_OrderMatters(t *testing.T) {
	p := Pt(3, 4)
	a := Chain{Translation(5, 1), Rotation(90)}.Apply(p)
	b := Chain{Rotation(90), Translation(5, 1)}.Apply(p)
	if a == b {
		t.Errorf("translate->rotate and rotate->translate both gave %v", a)
	}
}

func TestChain_RoundsEachStep(t *testing.T) {
	// Two 45 degree steps snap to the grid in between, which differs from a
	// single exact 90 degree rotation.
	p := Pt(2, 0)
	stepped := Chain{Rotation(45), Rotation(45)}.Apply(p)
	if want := Pt(0, 1); stepped != want {
		t.Errorf("two 45 degree steps = %v, want %v", stepped, want)
	}
	if whole := Rotate(p, 90); whole != Pt(0, 2) {
		t.Errorf("Rotate(%v, 90) = %v, want (0,2)", p, whole)
	}
}

func TestTransform_ZeroIsIdentity(t *testing.T) {
	var tr Transform
	if got := tr.Apply(Pt(8, -2)); got != Pt(8, -2) {
		t.Errorf("zero Transform.Apply = %v", got)
	}
	if tr.String() != "identity" {
		t.Errorf("zero Transform.String() = %q", tr.String())
	}
	if got := Rotation(90).String(); got != "rotate(90)" {
		t.Errorf("Rotation(90).String() = %q", got)
	}
	if got := Translation(5, -1).String(); got != "translate(5,-1)" {
		t.Errorf("Translation(5,-1).String() = %q", got)
	}
}
