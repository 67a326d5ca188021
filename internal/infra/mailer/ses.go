package mailer

import (
	"context"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/pkg/config"
	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESAPI is the part of the SES v2 client the sender uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESSender struct {
	client SESAPI
}

func NewSESSender(client SESAPI) *SESSender {
	return &SESSender{client: client}
}

// NewSESClient resolves credentials through the default AWS chain.
func NewSESClient(ctx context.Context, cfg config.MailConfig) (*sesv2.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, errs.Wrap(err, "failed to load AWS config")
	}
	return sesv2.NewFromConfig(awsCfg), nil
}

func (s *SESSender) Send(ctx context.Context, ch notification.Channel, msg shared.OutboundEmail) error {
	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(ch.From()),
		Destination: &types.Destination{
			ToAddresses: []string{recipientAddress(msg)},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.Body), Charset: aws.String("UTF-8")},
				},
			},
		},
	})
	if err != nil {
		return errs.Wrap(err, "ses SendEmail failed")
	}
	return nil
}
