//go:build wireinject
// +build wireinject

package app

import (
	"redeploy/internal/adapters/environment"
	"redeploy/internal/adapters/filesystem"
	"redeploy/internal/adapters/keyring"
	"redeploy/internal/adapters/rancher"
	"redeploy/internal/adapters/symmetric_encryptor"
	"redeploy/internal/adapters/terminal"
	"redeploy/internal/core"
	"redeploy/internal/core/handler"
	"redeploy/internal/logger"
	"redeploy/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideZalandoKeyring,
	symmetric_encryptor.ProvideAesGcmEncryptor,
	wire.Bind(new(ports.SymmetricEncryptor), new(*symmetric_encryptor.AesGcmEncryptor)),
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
	environment.ProvideOsEnvironment,
	wire.Bind(new(ports.Environment), new(*environment.OsEnvironment)),
	rancher.ProvideClientFactory,
	wire.Bind(new(ports.RancherClientFactory), new(*rancher.ClientFactory)),
	logger.ProvideLogger,
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideEncryptedFileCredentialRepository,
	core.ProvideStoreCredentialResolver,
	wire.Bind(new(core.CredentialResolver), new(*core.StoreCredentialResolver)),
	core.ProvideWorkloadPatcher,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectRedeployCommandHandler() (handler.RedeployCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideRedeployCommandHandler,
	)
	return handler.RedeployCommandHandler{}, nil
}

func InjectCredentialCommandHandler() (handler.CredentialCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideCredentialCommandHandler,
	)
	return handler.CredentialCommandHandler{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}
