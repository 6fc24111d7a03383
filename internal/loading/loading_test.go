package loading

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBulletPool(t *testing.T) {
	path := writeTemp(t, "bullets.json", `{
		"roles": {
			"backend": [
				{"id": "b1", "bullet": "Built a payments API", "lines": 2},
				{"bullet": "Cut deploy time in half"}
			]
		}
	}`)

	pool, err := LoadBulletPool(path)
	require.NoError(t, err)
	require.Len(t, pool.Roles["backend"], 2)

	first := pool.Roles["backend"][0]
	assert.Equal(t, "b1", first.ID)
	assert.Equal(t, "backend", first.Role)
	assert.Equal(t, 2, first.Lines)

	second := pool.Roles["backend"][1]
	assert.NotEmpty(t, second.ID, "missing IDs are generated")
	assert.Equal(t, 1, second.Lines, "missing line counts are estimated")
}

func TestLoadBulletPool_MissingFile(t *testing.T) {
	_, err := LoadBulletPool("/nonexistent/bullets.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoadBulletPool_MalformedJSON(t *testing.T) {
	path := writeTemp(t, "bad.json", `{"roles": [`)

	_, err := LoadBulletPool(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoadBulletPool_BlankBulletRejected(t *testing.T) {
	path := writeTemp(t, "blank.json", `{
		"roles": {"backend": [{"bullet": ""}]}
	}`)

	_, err := LoadBulletPool(path)
	var normErr *NormalizationError
	require.ErrorAs(t, err, &normErr)
}

func TestLoadBulletPool_EmptyPoolRejected(t *testing.T) {
	path := writeTemp(t, "empty.json", `{"roles": {}}`)

	_, err := LoadBulletPool(path)
	var normErr *NormalizationError
	require.ErrorAs(t, err, &normErr)
}

func TestLoadSkillTaxonomy(t *testing.T) {
	path := writeTemp(t, "skills.json", `{
		"Python": ["Programming Languages", " Programming Languages ", ""],
		"Kubernetes": ["Cloud Platforms", "DevOps Tools"]
	}`)

	taxonomy, err := LoadSkillTaxonomy(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Programming Languages"}, taxonomy["Python"],
		"categories are trimmed and deduplicated")
	assert.Equal(t, []string{"Cloud Platforms", "DevOps Tools"}, taxonomy["Kubernetes"])
}

func TestLoadSkillTaxonomy_EmptyRejected(t *testing.T) {
	path := writeTemp(t, "skills.json", `{}`)

	_, err := LoadSkillTaxonomy(path)
	var normErr *NormalizationError
	require.ErrorAs(t, err, &normErr)
}

func TestLoadSkillTaxonomy_BlankSkillRejected(t *testing.T) {
	path := writeTemp(t, "skills.json", `{" ": ["Tools"]}`)

	_, err := LoadSkillTaxonomy(path)
	var normErr *NormalizationError
	require.ErrorAs(t, err, &normErr)
}
