package services

import (
	"accounts/internal/app/deps"
	"accounts/internal/core/services"
	activateuser "accounts/internal/core/services/activate_user"
	createactivationtoken "accounts/internal/core/services/create_activation_token"
	createuser "accounts/internal/core/services/create_user"
	deleteactivationtoken "accounts/internal/core/services/delete_activation_token"
	deleteuser "accounts/internal/core/services/delete_user"
	getactivationtoken "accounts/internal/core/services/get_activation_token"
	getprofile "accounts/internal/core/services/get_profile"
	getuser "accounts/internal/core/services/get_user"
	listactivationtokens "accounts/internal/core/services/list_activation_tokens"
	listusers "accounts/internal/core/services/list_users"
	relayoutbox "accounts/internal/core/services/relay_outbox"
	sendactivationemail "accounts/internal/core/services/send_activation_email"
	setprofile "accounts/internal/core/services/set_profile"
	updateactivationtoken "accounts/internal/core/services/update_activation_token"
	updateuser "accounts/internal/core/services/update_user"
)

type Services struct {
	CreateUser   services.Service[createuser.Input, createuser.Result]
	GetUser      services.Service[getuser.Input, getuser.Result]
	ListUsers    services.Service[listusers.Input, listusers.Result]
	UpdateUser   services.Service[updateuser.Input, updateuser.Result]
	DeleteUser   services.Service[deleteuser.Input, deleteuser.Result]
	ActivateUser services.Service[activateuser.Input, activateuser.Result]

	CreateActivationToken services.Service[createactivationtoken.Input, createactivationtoken.Result]
	GetActivationToken    services.Service[getactivationtoken.Input, getactivationtoken.Result]
	ListActivationTokens  services.Service[listactivationtokens.Input, listactivationtokens.Result]
	UpdateActivationToken services.Service[updateactivationtoken.Input, updateactivationtoken.Result]
	DeleteActivationToken services.Service[deleteactivationtoken.Input, deleteactivationtoken.Result]

	SetProfile services.Service[setprofile.Input, setprofile.Result]
	GetProfile services.Service[getprofile.Input, getprofile.Result]

	RelayOutbox         services.Service[relayoutbox.Input, relayoutbox.Result]
	SendActivationEmail services.Service[sendactivationemail.Input, sendactivationemail.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateUser = createuser.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.ActivationTokenGenerator,
		deps.Now,
	)
	s.GetUser = getuser.New(
		deps.Logger,
		deps.UserRepository,
	)
	s.ListUsers = listusers.New(
		deps.Logger,
		deps.UserRepository,
	)
	s.UpdateUser = updateuser.New(
		deps.Logger,
		deps.UserRepository,
	)
	s.DeleteUser = deleteuser.New(
		deps.Logger,
		deps.UserRepository,
	)
	s.ActivateUser = activateuser.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.Now,
	)

	s.CreateActivationToken = createactivationtoken.New(
		deps.Logger,
		deps.ActivationTokenRepository,
		deps.ActivationTokenGenerator,
		deps.Now,
	)
	s.GetActivationToken = getactivationtoken.New(
		deps.Logger,
		deps.ActivationTokenRepository,
	)
	s.ListActivationTokens = listactivationtokens.New(
		deps.Logger,
		deps.ActivationTokenRepository,
	)
	s.UpdateActivationToken = updateactivationtoken.New(
		deps.Logger,
		deps.ActivationTokenRepository,
	)
	s.DeleteActivationToken = deleteactivationtoken.New(
		deps.Logger,
		deps.ActivationTokenRepository,
	)

	s.SetProfile = setprofile.New(
		deps.Logger,
		deps.ProfileRepository,
	)
	s.GetProfile = getprofile.New(
		deps.Logger,
		deps.ProfileRepository,
	)

	s.RelayOutbox = relayoutbox.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.NotificationPublisher,
		deps.Config.OutboxBatchSize,
		deps.Now,
	)
	s.SendActivationEmail = sendactivationemail.New(
		deps.Logger,
		deps.ActivationEmailSender,
	)

	return s
}
