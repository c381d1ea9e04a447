package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeFromScoreBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Grade
	}{
		{100, GradeS},
		{90, GradeS},
		{89.99, GradeA},
		{80, GradeA},
		{79.99, GradeB},
		{70, GradeB},
		{60, GradeC},
		{59.99, GradeD},
		{50, GradeD},
		{40, GradeE},
		{39.99, GradeF},
		{0, GradeF},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GradeFromScore(tc.score), "score %v", tc.score)
	}
}

func TestGradeFromScoreOpenEnded(t *testing.T) {
	// No clamping at either extreme.
	assert.Equal(t, GradeF, GradeFromScore(-15))
	assert.Equal(t, GradeS, GradeFromScore(250))
}

func TestGradePointsAndDescriptions(t *testing.T) {
	assert.Equal(t, 10, GradeS.Points())
	assert.Equal(t, "Outstanding", GradeS.Description())
	assert.Equal(t, 9, GradeA.Points())
	assert.Equal(t, 8, GradeB.Points())
	assert.Equal(t, 7, GradeC.Points())
	assert.Equal(t, 6, GradeD.Points())
	assert.Equal(t, 5, GradeE.Points())
	assert.Equal(t, 0, GradeF.Points())
	assert.Equal(t, "Fail", GradeF.Description())
}
