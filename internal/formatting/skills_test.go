package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "Cloud Platforms [AWS, Azure]", Format("Cloud Platforms", []string{"AWS", "Azure"}))
	assert.Equal(t, "Tools [Git]", Format("Tools", []string{"Git"}))
}

func TestFormatWithLimit_FittingLineUnchanged(t *testing.T) {
	got := FormatWithLimit("Tools", []string{"Git", "Make"}, DefaultLimit)
	assert.Equal(t, "Tools [Git, Make]", got)
}

func TestFormatWithLimit_Idempotent(t *testing.T) {
	first := FormatWithLimit("Cloud Platforms", []string{"AWS", "Azure", "GCP", "Kubernetes"}, DefaultLimit)
	assert.LessOrEqual(t, len(first), DefaultLimit)

	// running the policy again on an already-fitting selection changes nothing
	again := FormatWithLimit("Cloud Platforms", []string{"AWS", "Azure", "GCP", "Kubernetes"}, DefaultLimit)
	assert.Equal(t, first, again)
}

func TestFormatWithLimit_DropsTrailingSkillsWithSuffix(t *testing.T) {
	got := FormatWithLimit("Cloud Platforms",
		[]string{"AWS", "Azure", "GCP", "Kubernetes", "Docker", "Terraform"}, 50)

	assert.Equal(t, "Cloud Platforms [AWS, Azure, GCP, Kubernetes +2]", got)
	assert.LessOrEqual(t, len(got), 50)
}

func TestFormatWithLimit_NoRoomForSuffixReturnsFittedLine(t *testing.T) {
	// "Data [Spark, Hadoop]" is exactly 20 chars; the " +1]" marker would
	// not fit, so the fitted string comes back without it
	got := FormatWithLimit("Data", []string{"Spark", "Hadoop", "Kafka"}, 20)
	assert.Equal(t, "Data [Spark, Hadoop]", got)
}

func TestFormatWithLimit_SingleSkillTruncated(t *testing.T) {
	got := FormatWithLimit("Tools", []string{"SuperLongEnterprisePlatformName"}, 30)

	assert.Equal(t, "Tools [SuperLongEnterpris...]", got)
	assert.LessOrEqual(t, len(got), 30)
}

func TestFormatWithLimit_SingleSkillFallback(t *testing.T) {
	// available room is under the minimum worth truncating into
	got := FormatWithLimit("Enterprise Integration Platforms", []string{"Kubernetes"}, 20)
	assert.Equal(t, "Enterprise Integration Platforms [...]", got)
}

func TestFormatWithLimit_EmptySkills(t *testing.T) {
	assert.Equal(t, "", FormatWithLimit("Tools", nil, DefaultLimit))
}

func TestFormatWithLimit_ZeroLimitUsesDefault(t *testing.T) {
	got := FormatWithLimit("Tools", []string{"Git"}, 0)
	assert.Equal(t, "Tools [Git]", got)
}
