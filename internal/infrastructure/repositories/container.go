package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/assemblystamp/internal/domain/repositories"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories/attributes"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories/azurepipelines"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories/charset"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories/console"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories/msbuild"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register host registry with all host factories
	if err := container.Provide(func() *HostRegistry {
		reg := NewHostRegistry()
		reg.Register("azurepipelines", func() domainRepos.HostRepository {
			return azurepipelines.NewHostRepository()
		})
		reg.Register("console", func() domainRepos.HostRepository {
			return console.NewHostRepository()
		})
		return reg
	}); err != nil {
		return err
	}

	// Register patcher registry with all patcher implementations
	if err := container.Provide(func() *PatcherRegistry {
		reg := NewPatcherRegistry()
		reg.Register(msbuild.NewProjectPatcherRepository())
		reg.Register(attributes.NewSourcePatcherRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.CodecRepository {
		return charset.NewChardetCodecRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.FileFinderRepository {
		return filesystem.NewGlobFinderRepository()
	}); err != nil {
		return err
	}

	return container.Provide(func() domainRepos.FileStoreRepository {
		return filesystem.NewOSFileStoreRepository()
	})
}
