package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/gpmldiff/gpml"
	"github.com/viant/gpmldiff/model"
)

const pathwayDocument = `<Pathway xmlns="http://pathvisio.org/GPML/2013a" Name="p">
  <Label TextLabel="A" GraphId="l1"><Graphics CenterX="10" CenterY="10" Width="20" Height="10"/></Label>
</Pathway>`

const deltaDocument = `<Delta>
  <Modify>
    <Label xmlns="http://pathvisio.org/GPML/2013a" TextLabel="A" GraphId="l1"><Graphics CenterX="10" CenterY="10" Width="20" Height="10"/></Label>
    <Change attr="TextLabel" old="A" new="B" />
  </Modify>
  <Insert>
    <Label xmlns="http://pathvisio.org/GPML/2013a" TextLabel="C" GraphId="l2"><Graphics CenterX="50" CenterY="10" Width="20" Height="10"/></Label>
  </Insert>
</Delta>`

func setup(t *testing.T) afs.Service {
	ctx := context.Background()
	fs := afs.New()
	require.NoError(t, fs.Upload(ctx, "mem://localhost/patch/pathway.gpml", file.DefaultFileOsMode, strings.NewReader(pathwayDocument)))
	require.NoError(t, fs.Upload(ctx, "mem://localhost/patch/change.dgpml", file.DefaultFileOsMode, strings.NewReader(deltaDocument)))
	return fs
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	fs := setup(t)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run(ctx, fs, []string{"-out", "mem://localhost/patch/patched.gpml", "mem://localhost/patch/pathway.gpml", "mem://localhost/patch/change.dgpml"}, stdout, stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "inserted: 1, modified: 1, deleted: 0, rejected: 0\n", stdout.String())

	patched, err := gpml.NewStore(fs).Load(ctx, "mem://localhost/patch/patched.gpml")
	require.NoError(t, err)
	assert.Equal(t, "B", patched.ElementByID("l1").Text(model.TextLabel))
	assert.NotNil(t, patched.ElementByID("l2"))

	stdout.Reset()
	code = run(ctx, fs, []string{"-reverse", "mem://localhost/patch/patched.gpml", "mem://localhost/patch/change.dgpml"}, stdout, stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "inserted: 0, modified: 1, deleted: 1, rejected: 0\n", stdout.String())
	reverted, err := gpml.NewStore(fs).Load(ctx, "mem://localhost/patch/patched.gpml")
	require.NoError(t, err)
	assert.Equal(t, "A", reverted.ElementByID("l1").Text(model.TextLabel))
	assert.Nil(t, reverted.ElementByID("l2"))
}

func TestRun_Usage(t *testing.T) {
	fs := setup(t)
	stderr := &bytes.Buffer{}
	assert.Equal(t, 1, run(context.Background(), fs, []string{"mem://localhost/patch/pathway.gpml"}, &bytes.Buffer{}, stderr))
	assert.Contains(t, stderr.String(), "Usage: gpmlpatch")

	stderr.Reset()
	assert.Equal(t, 1, run(context.Background(), fs, []string{"mem://localhost/patch/pathway.gpml", "mem://localhost/patch/none.dgpml"}, &bytes.Buffer{}, stderr))
	assert.Contains(t, stderr.String(), "file not found")
}
