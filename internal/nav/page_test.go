package nav

import (
	"encoding/json"
	"testing"

	"kittytask/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	cases := map[string]Page{
		"home":         PageHome,
		"Tasks":        PageTaskList,
		"task_list":    PageTaskList,
		"group":        PageGroupDetail,
		"group_detail": PageGroupDetail,
		" settings ":   PageSettings,
	}
	for in, want := range cases {
		got, err := ParsePage(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePage("profile")
	assert.Error(t, err)
}

func TestPageJSONUsesNames(t *testing.T) {
	b, err := json.Marshal(Instruction{Op: OpRender, Page: PageGroupDetail})
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"render","page":"group_detail"}`, string(b))
}

func TestBuildPayloadIsPure(t *testing.T) {
	c := catalog.New()
	g := c.CreateGroup("")
	c.CreateTask(g, "")

	a := BuildPayload(c, PageTaskList, nil, 2, nil)
	b := BuildPayload(c, PageTaskList, nil, 2, nil)
	assert.Equal(t, a, b)
	assert.Equal(t, 2, c.NextTaskID())

	detail := BuildPayload(c, PageGroupDetail, g, 0, nil)
	require.NotNil(t, detail.Group)
	assert.Equal(t, g.ID, detail.Group.ID)
	assert.Equal(t, "No known description.", detail.Group.Description)
	assert.Empty(t, detail.Groups)
	assert.Nil(t, detail.Overview)
}

func TestPayloadDoesNotAliasCatalog(t *testing.T) {
	c := catalog.New()
	g := c.CreateGroup("before")
	p := BuildPayload(c, PageTaskList, nil, 3, nil)

	g.Name = "after"
	assert.Equal(t, "before", p.Groups[0].Name)
}
