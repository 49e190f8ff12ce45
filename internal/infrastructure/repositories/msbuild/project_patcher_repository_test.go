//go:build unit

package msbuild_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories/msbuild"
	"github.com/rios0rios0/assemblystamp/test/domain/entitybuilders"
)

const projectWithoutVersion = `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>netstandard2.0</TargetFramework>
  </PropertyGroup>
  <PropertyGroup Condition="'$(Configuration)' == 'Debug'">
    <DebugType>full</DebugType>
  </PropertyGroup>
</Project>
`

func TestProjectPatcherRepositoryPatch(t *testing.T) {
	t.Parallel()

	target := entities.NewManifestTarget("src/Lib/Lib.csproj")

	t.Run("should insert a missing package version in a new leading group", func(t *testing.T) {
		t.Parallel()

		// given
		patcher := msbuild.NewProjectPatcherRepository()
		config := entitybuilders.NewRunConfigBuilder().
			WithInsertAttributes(true).
			WithField(entities.FieldPackageVersion, "9.8.7-beta65").
			BuildRunConfig()

		// when
		result, err := patcher.Patch(projectWithoutVersion, target, config)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(result.Text, "<Version>9.8.7-beta65</Version>"))
		assert.True(t, strings.HasPrefix(result.Text, `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <Version>9.8.7-beta65</Version>
  </PropertyGroup>
  <PropertyGroup>
    <TargetFramework>netstandard2.0</TargetFramework>`))
		assert.Contains(t, result.Text, `<PropertyGroup Condition="'$(Configuration)' == 'Debug'">
    <DebugType>full</DebugType>
  </PropertyGroup>`)
		require.Len(t, result.Changes, 1)
		assert.True(t, result.Changes[0].Inserted)
	})

	t.Run("should update rather than duplicate on a second run", func(t *testing.T) {
		t.Parallel()

		// given
		patcher := msbuild.NewProjectPatcherRepository()
		config := entitybuilders.NewRunConfigBuilder().
			WithInsertAttributes(true).
			WithField(entities.FieldPackageVersion, "9.8.7-beta65").
			WithField(entities.FieldCompany, "Example Ltd").
			BuildRunConfig()
		first, err := patcher.Patch(projectWithoutVersion, target, config)
		require.NoError(t, err)

		// when
		second, err := patcher.Patch(first.Text, target, config)

		// then
		require.NoError(t, err)
		assert.Equal(t, first.Text, second.Text)
		assert.Equal(t, 1, strings.Count(second.Text, "<Version>"))
		assert.False(t, second.Changes[0].Inserted)
	})

	t.Run("should skip missing fields when insertion is disabled", func(t *testing.T) {
		t.Parallel()

		// given
		patcher := msbuild.NewProjectPatcherRepository()
		config := entitybuilders.NewRunConfigBuilder().
			WithField(entities.FieldPackageVersion, "9.8.7").
			BuildRunConfig()

		// when
		result, err := patcher.Patch(projectWithoutVersion, target, config)

		// then
		require.NoError(t, err)
		assert.Equal(t, projectWithoutVersion, result.Text)
		assert.Empty(t, result.Changes)
	})

	t.Run("should update the first group holding the element even when conditioned", func(t *testing.T) {
		t.Parallel()

		// given
		patcher := msbuild.NewProjectPatcherRepository()
		config := entitybuilders.NewRunConfigBuilder().
			WithInsertAttributes(true).
			WithField(entities.FieldProduct, "Stamped").
			BuildRunConfig()
		text := strings.Replace(projectWithoutVersion, "<DebugType>full</DebugType>",
			"<DebugType>full</DebugType>\n    <Product>Old</Product>", 1)

		// when
		result, err := patcher.Patch(text, target, config)

		// then
		require.NoError(t, err)
		assert.Equal(t, strings.Replace(text, "<Product>Old</Product>", "<Product>Stamped</Product>", 1), result.Text)
	})

	t.Run("should merge pinned version components with the existing value", func(t *testing.T) {
		t.Parallel()

		// given
		patcher := msbuild.NewProjectPatcherRepository()
		config := entitybuilders.NewRunConfigBuilder().
			WithField(entities.FieldVersion, "#.15.#.98").
			WithField(entities.FieldFileVersion, "2.*.*").
			WithComponents(11, 2018).
			BuildRunConfig()
		text := strings.Replace(projectWithoutVersion, "</TargetFramework>",
			"</TargetFramework>\n    <AssemblyVersion>1.0.0.0</AssemblyVersion>\n    <FileVersion>1.0.0.0</FileVersion>", 1)

		// when
		result, err := patcher.Patch(text, target, config)

		// then
		require.NoError(t, err)
		assert.Contains(t, result.Text, "<AssemblyVersion>1.15.0.98</AssemblyVersion>")
		assert.Contains(t, result.Text, "<FileVersion>2.11.2018</FileVersion>")
	})

	t.Run("should write boolean picklist values", func(t *testing.T) {
		t.Parallel()

		// given
		patcher := msbuild.NewProjectPatcherRepository()
		config := entitybuilders.NewRunConfigBuilder().
			WithInsertAttributes(true).
			WithField(entities.FieldGeneratePackageOnBuild, "true").
			WithField(entities.FieldPackageRequireLicenseAcceptance, "ignore").
			BuildRunConfig()

		// when
		result, err := patcher.Patch(projectWithoutVersion, target, config)

		// then
		require.NoError(t, err)
		assert.Contains(t, result.Text, "<GeneratePackageOnBuild>true</GeneratePackageOnBuild>")
		assert.NotContains(t, result.Text, "PackageRequireLicenseAcceptance")
	})

	t.Run("should leave the file untouched when every directive is empty", func(t *testing.T) {
		t.Parallel()

		// given
		patcher := msbuild.NewProjectPatcherRepository()
		config := entitybuilders.NewRunConfigBuilder().WithInsertAttributes(true).BuildRunConfig()

		// when
		result, err := patcher.Patch(projectWithoutVersion, target, config)

		// then
		require.NoError(t, err)
		assert.Equal(t, projectWithoutVersion, result.Text)
	})

	t.Run("should reject legacy framework projects when configured", func(t *testing.T) {
		t.Parallel()

		// given
		patcher := msbuild.NewProjectPatcherRepository()
		config := entitybuilders.NewRunConfigBuilder().
			WithIgnoreNetFrameworkProjects(true).
			WithField(entities.FieldCompany, "Example").
			BuildRunConfig()
		text := `<Project ToolsVersion="15.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <PropertyGroup>
    <TargetFrameworkVersion>v4.7.2</TargetFrameworkVersion>
  </PropertyGroup>
</Project>`

		// when
		_, err := patcher.Patch(text, target, config)

		// then
		require.ErrorIs(t, err, entities.ErrNotApplicable)
	})

	t.Run("should report parse failures as invalid manifests", func(t *testing.T) {
		t.Parallel()

		// given
		patcher := msbuild.NewProjectPatcherRepository()
		config := entitybuilders.NewRunConfigBuilder().BuildRunConfig()

		// when
		_, err := patcher.Patch("not xml at all", target, config)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidManifest)
	})
}

func TestProjectPatcherRepositorySupports(t *testing.T) {
	t.Parallel()

	t.Run("should only accept project files", func(t *testing.T) {
		t.Parallel()

		// given
		patcher := msbuild.NewProjectPatcherRepository()

		// when / then
		assert.True(t, patcher.Supports(entities.FileKindProject))
		assert.False(t, patcher.Supports(entities.FileKindCSharp))
		assert.Equal(t, "msbuild", patcher.Name())
	})
}
