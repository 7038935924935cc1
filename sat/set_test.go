package sat

import "testing"

func TestResetSetAddContains(t *testing.T) {
	rs := &ResetSet{}
	for i := 0; i < 5; i++ {
		rs.Expand()
	}
	rs.Clear()

	rs.Add(1)
	rs.Add(3)

	for _, v := range []int{1, 3} {
		if !rs.Contains(v) {
			t.Errorf("Contains(%d) = false, want true", v)
		}
	}
	for _, v := range []int{0, 2, 4} {
		if rs.Contains(v) {
			t.Errorf("Contains(%d) = true, want false", v)
		}
	}
}

func TestResetSetClearRemovesElements(t *testing.T) {
	rs := &ResetSet{}
	for i := 0; i < 3; i++ {
		rs.Expand()
	}
	rs.Add(0)
	rs.Add(1)
	rs.Clear()

	if rs.Contains(0) || rs.Contains(1) {
		t.Fatal("Clear() did not clear previously added elements")
	}

	rs.Add(2)
	if !rs.Contains(2) || rs.Contains(0) {
		t.Fatal("set state inconsistent after Clear then Add")
	}
}

func TestResetSetOverflow(t *testing.T) {
	rs := &ResetSet{addedTimestamp: 0xfffe}
	rs.Expand()
	rs.Add(0)
	rs.Clear() // timestamp -> 0xffff
	rs.Clear() // overflow -> resets to 1 and zeroes addedAt

	if rs.Contains(0) {
		t.Fatal("overflow should have cleared previously added element")
	}
}
