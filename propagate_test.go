package satgo

import "testing"

func TestAssignSatisfiesAndShrinksClauses(t *testing.T) {
	s, err := New([][]int{{1, 2}, {-1, 3}}, DefaultConfig(D1))
	if err != nil {
		t.Fatal(err)
	}
	if !s.assign(Literal(1)) {
		t.Fatal("assign(1) unexpectedly conflicted")
	}
	if s.unsatisfied.Contains(0) {
		t.Error("clause {1,2} should have left the unsatisfied set once 1 was assigned true")
	}
	if !s.unsatisfied.Contains(1) {
		t.Error("clause {-1,3} should still be unsatisfied")
	}
	if s.arena.working[1].Len() != 1 {
		t.Errorf("working form of {-1,3} has %d literals, want 1 (−1 removed as falsified)", s.arena.working[1].Len())
	}
	if !s.arena.working[1].Contains(Literal(3)) {
		t.Error("working form of {-1,3} should still contain 3")
	}
}

func TestAssignAlreadyAssignedConsistentLiteral(t *testing.T) {
	s, err := New([][]int{{1, 2}}, DefaultConfig(D1))
	if err != nil {
		t.Fatal(err)
	}
	if !s.assign(Literal(1)) {
		t.Fatal("assign(1) unexpectedly conflicted")
	}
	if !s.assign(Literal(1)) {
		t.Error("re-assigning the same, already-true literal should succeed with no side effects")
	}
	if s.assign(Literal(-1)) {
		t.Error("assigning the negation of an already-true literal should fail")
	}
}

// TestAssignConflictReason exercises the conflict-reason rule:
// a conflict fires when an opposite-polarity unit clause's
// sole literal is -l, and some clause on the satisfying side had every
// other literal already false. The reason is the union of that clause's
// false literals and the unit clause's literals other than -l.
func TestAssignConflictReason(t *testing.T) {
	// idx0 {1,-2}: var2 will be pinned true first, so -2 reads false here.
	// idx1 {2,4}: gives var2 somewhere to be assigned from, unrelated to
	// the conflict itself.
	// idx2 {-1}: a standing unit clause whose sole literal is -1.
	s, err := New([][]int{{1, -2}, {2, 4}, {-1}}, DefaultConfig(D1))
	if err != nil {
		t.Fatal(err)
	}
	if !s.assign(Literal(2)) {
		t.Fatal("assign(2) unexpectedly conflicted")
	}

	if s.assign(Literal(1)) {
		t.Fatal("assign(1) should have conflicted")
	}
	if !s.lastStatus.conflict {
		t.Fatal("lastStatus.conflict = false, want true")
	}
	if len(s.lastStatus.reason) != 1 || s.lastStatus.reason[0] != Literal(-2) {
		t.Errorf("lastStatus.reason = %v, want [-2]", s.lastStatus.reason)
	}
	if s.vars[1].value != unassigned {
		t.Error("var 1 should be reverted to unassigned after a conflicting assign")
	}
}

func TestUnassignInvertsShrink(t *testing.T) {
	s, err := New([][]int{{1, 2}}, DefaultConfig(D1))
	if err != nil {
		t.Fatal(err)
	}
	if !s.assign(Literal(-1)) {
		t.Fatal("assign(-1) unexpectedly conflicted")
	}
	if s.arena.working[0].Len() != 1 {
		t.Fatalf("working form has %d literals after assign(-1), want 1", s.arena.working[0].Len())
	}
	s.unassign(Literal(-1))
	if s.arena.working[0].Len() != 2 {
		t.Errorf("working form has %d literals after unassign, want 2", s.arena.working[0].Len())
	}
	if s.vars[1].value != unassigned {
		t.Error("var 1 should be unassigned after unassign(-1)")
	}
	if !s.unsatisfied.Contains(0) {
		t.Error("clause {1,2} should be back in the unsatisfied set after unassign(-1)")
	}
}
