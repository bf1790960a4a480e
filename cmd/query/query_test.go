package query_test

import (
	"testing"

	"github.com/zxfpro/expenditure-analyse/cmd/query"
	"github.com/zxfpro/expenditure-analyse/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestQueryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "query [question]", query.Cmd.Use)
	assert.Contains(t, query.Cmd.Short, "natural-language question")
	assert.NotNil(t, query.Cmd.RunE)
}

func TestQueryCommand_RequiresInput(t *testing.T) {
	originalInput := root.SharedFlags.Input
	defer func() { root.SharedFlags.Input = originalInput }()

	root.SharedFlags.Input = ""

	err := query.Cmd.RunE(query.Cmd, []string{"我的总支出是多少？"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--input")
}
