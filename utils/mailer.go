package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesOnce   sync.Once
	sesClient *ses.Client
	sesErr    error
)

// sesMailer builds the SES client on first use so the package stays usable
// (and testable) without AWS configuration.
func sesMailer() (*ses.Client, error) {
	sesOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			sesErr = fmt.Errorf("AWS config load failed: %w", err)
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient, sesErr
}

func sendEmail(to, subject, body string) error {
	client, err := sesMailer()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := client.SendEmail(context.TODO(), input); err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered user. Failures are for the
// caller to log; registration never depends on it.
func SendWelcomeEmail(to, firstName string) error {
	subject := "Welcome to FitMe"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour FitMe account is ready. Complete the onboarding questionnaire to get your maintenance calories and start your streak.\n",
		firstName,
	)
	return sendEmail(to, subject, body)
}
