package timeline

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		offset int
		want   string
	}{
		{name: "simple shift", in: "3:45", offset: 0, want: "2:15"},
		{name: "full carry over keeps time", in: "1:00", offset: 90, want: "1:00"},
		{name: "negative clamps to zero", in: "0:30", offset: 0, want: "0:00"},
		{name: "no timestamps", in: "no timestamps here", offset: 5, want: "no timestamps here"},
		{name: "empty input", in: "", offset: 20, want: ""},
		{name: "surrounding text kept", in: "1:20 UB ペコ", offset: 30, want: "0:20 UB ペコ"},
		{name: "multi line", in: "1:20 A\n1:05 B\n0:40 C", offset: 40, want: "0:30 A<br>0:15 B<br>0:00 C"},
		{name: "two digit minutes only uses last digit", in: "12:30", offset: 0, want: "11:00"},
		{name: "three digit seconds consumes two", in: "1:234", offset: 0, want: "0:004"},
		{name: "adjacent timestamps", in: "1:001:00", offset: 90, want: "1:001:00"},
		{name: "emitted text not rescanned", in: "2:00 2:00", offset: 0, want: "0:30 0:30"},
		{name: "offset above baseline", in: "9:59", offset: 600, want: "18:29"},
		{name: "negative offset", in: "1:30", offset: -10, want: "0:00"},
		{name: "full width digits and colon", in: "１：３０", offset: 45, want: "0:45"},
		{name: "one digit seconds not matched", in: "1:5", offset: 0, want: "1:5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Rewrite(tc.in, tc.offset))
		})
	}
}

func TestRewrite_FullWidthScenario(t *testing.T) {
	in := "Ａ１：２３\nＢ"

	// seuls chiffres et deux-points sont convertis par défaut
	assert.Equal(t, "Ａ0:00<br>Ｂ", Rewrite(in, 0))

	folded := New(WithWidthFold(true))
	assert.Equal(t, "A0:00<br>B", folded.Rewrite(in, 0))
}

func TestRewrite_Passthrough(t *testing.T) {
	in := "ボス討伐\n\tセット: ok\n1:2 / 12 : 30"
	want := strings.ReplaceAll(in, "\n", "<br>")
	assert.Equal(t, want, Rewrite(in, 17))
}

func TestRewrite_LineBreakVariants(t *testing.T) {
	in := "a\r\nb\rc\nd"

	assert.Equal(t, "a<br>b<br>c<br>d", Rewrite(in, 0))
	assert.Equal(t, "a\nb\nc\nd", New(WithLineBreak("\n")).Rewrite(in, 0))
	assert.Equal(t, "a<br />b<br />c<br />d", New(WithLineBreak("<br />")).Rewrite(in, 0))
}

func TestRewriter_Baseline(t *testing.T) {
	r := New(WithBaseline(0))
	assert.Equal(t, 0, r.Baseline())
	assert.Equal(t, "1:00", r.Rewrite("1:00", 0))
	assert.Equal(t, "0:30", r.Rewrite("1:00", -30))

	assert.Equal(t, DefaultBaseline, New().Baseline())
}

func TestRewriter_ApplyStats(t *testing.T) {
	res := New().Apply("1:40 A\n0:20 B\nC 1:00", 0)

	assert.Equal(t, "0:10 A<br>0:00 B<br>C 0:00", res.Text)
	assert.Equal(t, 3, res.Matches)
	assert.Equal(t, 2, res.Clamped)
}

func TestRewriter_ClampProperty(t *testing.T) {
	r := New()
	for m := 0; m <= 9; m++ {
		for s := 0; s < 60; s += 7 {
			for _, offset := range []int{-30, 0, 20, 90} {
				in := strconv.Itoa(m) + ":" + pad2(s)
				total := m*60 + s - (90 - offset)
				got := r.Rewrite(in, offset)
				if total < 0 {
					assert.Equal(t, "0:00", got, "in=%s offset=%d", in, offset)
					continue
				}
				assert.Equal(t, strconv.Itoa(total/60)+":"+pad2(total%60), got, "in=%s offset=%d", in, offset)
			}
		}
	}
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func TestRewrite_InvalidUTF8DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		got := Rewrite("\xff1:30\xfe", 0)
		assert.Contains(t, got, "0:00")
	})
}

func TestRewriteString(t *testing.T) {
	got, err := RewriteString("3:45", "0")
	require.NoError(t, err)
	assert.Equal(t, "2:15", got)

	got, err = RewriteString("1:00", "９０")
	require.NoError(t, err)
	assert.Equal(t, "1:00", got)

	got, err = RewriteString("3:45", "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOffset))
	assert.Empty(t, got)
}

func TestRewriter_ConcurrentUse(t *testing.T) {
	r := New(WithWidthFold(true))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "2:15<br>0:00", r.Rewrite("３：４５\n0:10", 0))
			}
		}()
	}
	wg.Wait()
}
