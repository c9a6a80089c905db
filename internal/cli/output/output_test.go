package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirect_CapturesPlainOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	restore := Redirect(&out, &errOut)
	defer restore()

	PrintSuccess("Workload updated")
	PrintStep("foo:1 -> foo:2")
	PrintWarning("endpoint does not end with /v3")
	PrintError("failed")

	assert.Equal(t, "+ Workload updated\n  -> foo:1 -> foo:2\n", out.String())
	assert.Equal(t, "! endpoint does not end with /v3\nx failed\n", errOut.String())
}

func TestRedirect_RestoresPreviousWriters(t *testing.T) {
	var first, second bytes.Buffer
	restoreFirst := Redirect(&first, &first)
	restoreSecond := Redirect(&second, &second)

	PrintInfo("second")
	restoreSecond()
	PrintInfo("first")
	restoreFirst()

	assert.Equal(t, "* second\n", second.String())
	assert.Equal(t, "* first\n", first.String())
}

func TestColorsDisabledForNonTerminalWriter(t *testing.T) {
	var out bytes.Buffer
	previous := stdout
	stdout = &out
	defer func() { stdout = previous }()

	assert.False(t, ColorsEnabled())
	assert.Equal(t, "text", Bold("text"))
}

func TestPrintBullet(t *testing.T) {
	var out bytes.Buffer
	defer Redirect(&out, &out)()

	PrintBullet("prod", "https://rancher.local/v3")
	PrintBullet("dev", "")

	assert.Equal(t, "  - prod  https://rancher.local/v3\n  - dev\n", out.String())
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "image", Plural(1, "image", "images"))
	assert.Equal(t, "images", Plural(0, "image", "images"))
	assert.Equal(t, "images", Plural(3, "image", "images"))
}
