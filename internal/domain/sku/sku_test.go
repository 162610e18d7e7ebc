package sku_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edievo/edsis-api/internal/domain/sku"
)

func TestSegment(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Blue Side", "BLSI"},
		{"Sofa", "SOFA"},
		{"Tub", "TUB1"},
		{"A B", "AB11"},
		{"Et-Cetera", "ETCE"},
		{"lamp", "LAMP"},
		{"Chandelier", "CHAN"},
		{"", "XXXX"},
		{"!!!", "XXXX"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sku.Segment(c.in), "segment of %q", c.in)
	}
}

func TestSegment_PunctuationStrippedBeforeSplitting(t *testing.T) {
	// "mid-century" collapses to one word once the hyphen is gone.
	assert.Equal(t, "MIDC", sku.Segment("mid-century"))
}

func TestBase(t *testing.T) {
	assert.Equal(t, "SLAM-POLA-TUBA", sku.Base("Slamp", "Polar Lights", "Tuba Grande"))
	assert.Equal(t, "KART-XXXX-SOFA", sku.Base("Kartell", "", "Sofa"))
}

func TestResolveCollision_FreeBase(t *testing.T) {
	existing := map[string]struct{}{"OTHR-CODE-HERE": {}}
	assert.Equal(t, "SLAM-POLA-TUBA", sku.ResolveCollision("SLAM-POLA-TUBA", existing))
}

func TestResolveCollision_VariesLastSegmentDigit(t *testing.T) {
	existing := map[string]struct{}{"SLAM-POLA-TUBA": {}}
	assert.Equal(t, "SLAM-POLA-TUB1", sku.ResolveCollision("SLAM-POLA-TUBA", existing))

	existing["SLAM-POLA-TUB1"] = struct{}{}
	existing["SLAM-POLA-TUB2"] = struct{}{}
	assert.Equal(t, "SLAM-POLA-TUB3", sku.ResolveCollision("SLAM-POLA-TUBA", existing))
}

func TestResolveCollision_RandomSuffixWhenDigitsExhausted(t *testing.T) {
	existing := map[string]struct{}{"SLAM-POLA-TUBA": {}}
	for i := 1; i <= 9; i++ {
		existing["SLAM-POLA-TUB"+string(rune('0'+i))] = struct{}{}
	}
	got := sku.ResolveCollision("SLAM-POLA-TUBA", existing)
	assert.Regexp(t, regexp.MustCompile(`^SLAM-POLA-TUBA\d{2}$`), got)
}

func TestResolveCollision_ShortBase(t *testing.T) {
	existing := map[string]struct{}{"SOFA": {}}
	assert.Equal(t, "SOFA-01", sku.ResolveCollision("SOFA", existing))
}

func TestSerialCode(t *testing.T) {
	assert.Equal(t, "SLAM-POLA-TUBA-0001", sku.SerialCode("SLAM-POLA-TUBA", 1))
	assert.Equal(t, "SLAM-POLA-TUBA-0042", sku.SerialCode("SLAM-POLA-TUBA", 42))
	assert.Equal(t, "SLAM-POLA-TUBA-12345", sku.SerialCode("SLAM-POLA-TUBA", 12345))
}
