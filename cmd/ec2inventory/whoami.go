package main

import (
	"fmt"

	"github.com/spf13/cobra"

	aws "ec2inventory/internal/providers/aws"
	"ec2inventory/internal/ui"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the AWS identity behind the configured credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := resolveSession(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			creds, err := sess.source.Retrieve(ctx)
			if err != nil {
				return fmt.Errorf("failed to retrieve credentials from %s source: %w", sess.source.Name(), err)
			}

			client, err := aws.NewSTSClient(ctx, sess.region, creds)
			if err != nil {
				return aws.ClassifyAWSError(err, aws.STSResourceType, sess.region)
			}

			identity, err := aws.NewIdentityServiceWithClient(client, sess.region).GetCallerIdentity(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderIdentity(identity.Account, identity.Arn, identity.UserID))
			return nil
		},
	}
}
