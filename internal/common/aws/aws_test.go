package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	inputs []*ses.SendEmailInput
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, in)
	return &ses.SendEmailOutput{}, nil
}

type fakeSNS struct {
	inputs []*sns.PublishInput
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, in)
	return &sns.PublishOutput{}, nil
}

func TestSESClient_SendsTextEmail(t *testing.T) {
	fake := &fakeSES{}
	client := NewSESClientWithAPI(fake)

	_, err := client.SendEmail(context.Background(), TextEmail("ops@example.com", []string{"dev@example.com"}, "Run summary", "3 runs"))
	require.NoError(t, err)

	require.Len(t, fake.inputs, 1)
	in := fake.inputs[0]
	assert.Equal(t, "ops@example.com", *in.Source)
	assert.Equal(t, []string{"dev@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, "Run summary", *in.Message.Subject.Data)
	assert.Equal(t, "3 runs", *in.Message.Body.Text.Data)
}

func TestSNSClient_PublishesWithAttributes(t *testing.T) {
	fake := &fakeSNS{}
	client := NewSNSClientWithAPI(fake)

	_, err := client.Publish(context.Background(), TopicMessage("arn:aws:sns:us-east-1:1:runs", "failed", "body", map[string]string{"presetId": "p1"}))
	require.NoError(t, err)

	require.Len(t, fake.inputs, 1)
	in := fake.inputs[0]
	assert.Equal(t, "arn:aws:sns:us-east-1:1:runs", *in.TopicArn)
	assert.Equal(t, "p1", *in.MessageAttributes["presetId"].StringValue)
}
