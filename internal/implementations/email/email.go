package email

import (
	"context"
	"encoding/json"
	"net/url"

	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                    string
	accountActivationTemplate string
	accountActivationUrl      url.URL
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	accountActivationTemplate string,
	accountActivationUrl url.URL,
) *EmailSender {
	return &EmailSender{
		ses:                       ses.NewFromConfig(awsConfig),
		sender:                    sender,
		accountActivationTemplate: accountActivationTemplate,
		accountActivationUrl:      accountActivationUrl,
	}
}

type accountActivationTemplateParams struct {
	ActivationCode string `json:"activation_code"`
	ActivationUrl  string `json:"activation_url"`
}

func (s *EmailSender) SendActivationEmail(ctx context.Context, email c.Email, token user.Token) error {
	templateParamsBytes, err := json.Marshal(
		accountActivationTemplateParams{
			ActivationCode: string(token),
			ActivationUrl:  s.accountActivationUrl.String(),
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	to := string(email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{to},
			},
			Template:     &s.accountActivationTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}
