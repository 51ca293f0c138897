package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/jsphweid/fretcast/constants"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Uploads converted JSON to S3",
	Long:  `Uploads every converted JSON file in the output dir to the configured S3 bucket so the visualizer can fetch it.`,
	Run: func(cmd *cobra.Command, args []string) {
		publish()
	},
}

func publish() {
	bucket := constants.GetBucket()

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(constants.GetRegion()),
	})
	if err != nil {
		panic("Could not create an S3 session because " + err.Error())
	}
	client := s3.New(sess)

	outDir := constants.GetOutputDir()
	entries, err := os.ReadDir(outDir)
	if err != nil {
		panic("Could not read output dir because: " + err.Error())
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}

	for i, name := range names {
		fmt.Printf("Uploading %v of %v files\n", i+1, len(names))
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			panic("Could not read " + name + " because: " + err.Error())
		}
		_, err = client.PutObject(&s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String("data/" + name),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			panic("Could not upload " + name + " because: " + err.Error())
		}
	}
}
