package gig

import (
	"testing"

	assert "github.com/stretchr/testify/assert"

	code "github.com/srinivas-tce/labgigs/pkg/common/code"
)

func TestCriterionValidate(t *testing.T) {
	cases := []struct {
		name string
		c    Criterion
		ok   bool
	}{
		{"manual percentage", Criterion{Name: "CGPA", DataType: DataPercentage, Type: CriterionManual}, true},
		{"manual boolean", Criterion{Name: "Safety training", DataType: DataBoolean, Type: CriterionManual}, true},
		{"choice with options", Criterion{Name: "Year", DataType: DataText, Type: CriterionMultipleChoice, Options: []string{"2nd", "3rd"}}, true},
		{"choice without options", Criterion{Name: "Year", DataType: DataText, Type: CriterionMultipleChoice}, false},
		{"unknown data type", Criterion{Name: "X", DataType: "float", Type: CriterionManual}, false},
		{"unknown type", Criterion{Name: "X", DataType: DataInteger, Type: "auto"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, code.CriteriaErr)
			}
		})
	}
}
