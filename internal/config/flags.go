package config

import (
	"flag"
	"os"
	"time"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory for the local database
//	-k string   relay kind: "http" or "s3"
//	-r string   base URL of the objects relay (http kind)
//	-n string   logical snapshot name shared by the shop's devices
//	-o string   origin identifier of this device
//	-i int      relay poll interval, seconds
//	-f          prefer the cloud snapshot on startup
//	-s string   JWT HMAC secret key
//	-t int      session token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers and then converted to
//     time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-r", "-n", "-o", "-i", "-f", "-s", "-t", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DataDir, "d", config.DataDir, "data directory")
	fs.StringVar(&config.RelayKind, "k", config.RelayKind, "relay kind (http or s3)")
	fs.StringVar(&config.RelayBaseURL, "r", config.RelayBaseURL, "relay base URL")
	fs.StringVar(&config.RelayName, "n", config.RelayName, "snapshot name")
	fs.StringVar(&config.Origin, "o", config.Origin, "device origin identifier")

	pollInterval := fs.Int("i", int(config.PollInterval.Seconds()), "poll interval (in seconds)")
	fs.BoolVar(&config.PreferCloud, "f", config.PreferCloud, "prefer cloud snapshot on startup")

	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.TokenValidity.Minutes()), "token validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.PollInterval = time.Duration(*pollInterval) * time.Second
	config.TokenValidity = time.Duration(*tokenValidity) * time.Minute
}
