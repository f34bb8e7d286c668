package main

import (
	"github.com/spf13/cobra"

	"github.com/RoeZX/watson-go-sdk/assistantv2"
	"github.com/RoeZX/watson-go-sdk/core"
)

const assistantDefaultVersion = "2021-11-27"

func (c *cli) assistantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Watson Assistant",
	}

	message := &cobra.Command{
		Use:   "message <assistant-id> <text>",
		Short: "Send a message to an assistant",
		Long: "Send one message to an assistant. Without --session a session is created " +
			"for the message and deleted afterwards; --stateless skips sessions entirely.",
		Args: cobra.ExactArgs(2),
		RunE: c.runMessage,
	}
	message.Flags().String("session", "", "Existing session ID to send the message in")
	message.Flags().Bool("stateless", false, "Use the stateless message endpoint")

	cmd.AddCommand(message)
	return cmd
}

func (c *cli) runMessage(cmd *cobra.Command, args []string) error {
	assistantID, text := args[0], args[1]
	sessionID, _ := cmd.Flags().GetString("session")
	stateless, _ := cmd.Flags().GetBool("stateless")
	ctx := cmd.Context()

	a, err := assistantv2.NewAssistantV2(c.version(assistantDefaultVersion), c.serviceOptions()...)
	if err != nil {
		return err
	}

	if stateless {
		resp, err := a.MessageStateless(ctx, &assistantv2.MessageStatelessOptions{
			AssistantID: assistantID,
			Input: &assistantv2.MessageInputStateless{
				MessageType: core.StringPtr(assistantv2.MessageTypeText),
				Text:        core.StringPtr(text),
			},
		})
		if err != nil {
			return err
		}
		return printResult(c, cmd, resp)
	}

	if sessionID == "" {
		session, err := a.CreateSession(ctx, &assistantv2.CreateSessionOptions{AssistantID: assistantID})
		if err != nil {
			return err
		}
		sessionID = session.Result.SessionID
		c.log.Info().Str("session_id", sessionID).Msg("session created")
		defer func() {
			if _, err := a.DeleteSession(ctx, &assistantv2.DeleteSessionOptions{
				AssistantID: assistantID,
				SessionID:   sessionID,
			}); err != nil {
				c.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to delete session")
			}
		}()
	}

	resp, err := a.Message(ctx, &assistantv2.MessageOptions{
		AssistantID: assistantID,
		SessionID:   sessionID,
		Input: &assistantv2.MessageInput{
			MessageType: core.StringPtr(assistantv2.MessageTypeText),
			Text:        core.StringPtr(text),
		},
	})
	if err != nil {
		return err
	}
	return printResult(c, cmd, resp)
}
