package remote

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/mailbox"
	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"golang.org/x/time/rate"
)

type Config struct {
	ServerURL           string
	Username            string
	Password            string
	DebugLogger         lib.Logger
	NoTLS               bool
	SkipTLSVerification bool
	// CommandsPerSecond throttles the folder commands sent to the server
	// (0 = no limit). This is not a retry policy: a failed command is
	// never resent.
	CommandsPerSecond float64
}

type Imap struct {
	client    *client.Client
	log       lib.Logger
	limiter   *rate.Limiter
	delimiter string
}

func NewImap(cfg Config) (*Imap, error) {
	log := cfg.DebugLogger
	if log == nil {
		log = &lib.NoLog{}
	}
	if cfg.ServerURL == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("missing information from Config object")
	}

	var imapClient *client.Client
	var err error
	log.Printf("Connecting to server %s...", cfg.ServerURL)
	if cfg.NoTLS {
		imapClient, err = client.Dial(cfg.ServerURL)
	} else {
		tlsConfig := &tls.Config{}
		if cfg.SkipTLSVerification {
			tlsConfig.InsecureSkipVerify = true
		}
		imapClient, err = client.DialTLS(cfg.ServerURL, tlsConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot connect to server %s: %w", cfg.ServerURL, err)
	}
	log.Print("Connected")

	if err := imapClient.Login(cfg.Username, cfg.Password); err != nil {
		return nil, fmt.Errorf("authentication failure: %w", err)
	}
	log.Printf("Logged in as %s", cfg.Username)

	if caps, err := imapClient.Capability(); err == nil {
		log.Printf("capabilities: %+v", caps)
	}

	var limiter *rate.Limiter
	if cfg.CommandsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.CommandsPerSecond), 1)
	}

	return &Imap{
		client:  imapClient,
		log:     log,
		limiter: limiter,
	}, nil
}

func (i *Imap) Close() error {
	i.log.Print("Closing connection")
	return i.client.Logout()
}

// DebugLogger sets a logger to send debug information to
func (i *Imap) DebugLogger(logger lib.Logger) {
	if logger == nil {
		logger = &lib.NoLog{}
	}
	i.log = logger
}

func (i *Imap) Delimiter() string {
	if i.delimiter == "" {
		if _, err := i.ListMailbox(); err != nil {
			i.log.Printf("cannot detect the delimiter: %s", err)
		}
	}
	return i.delimiter
}

func (i *Imap) ListMailbox() ([]mailbox.Info, error) {
	i.wait()
	mailboxes := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)
	go func() {
		done <- i.client.List("", "*", mailboxes)
	}()

	i.log.Print("Listing mailboxes:")
	info := make([]mailbox.Info, 0, 10)
	for m := range mailboxes {
		i.log.Printf("* %q: %+v (delimiter = %q)", m.Name, m.Attributes, m.Delimiter)
		info = append(info, mailbox.Info{
			Delimiter: m.Delimiter,
			Name:      m.Name,
		})
		// sets the delimiter (if not already set)
		if i.delimiter == "" {
			i.delimiter = m.Delimiter
		}
	}

	if err := <-done; err != nil {
		return nil, err
	}
	return info, nil
}

func (i *Imap) CreateMailbox(info mailbox.Info) error {
	name := lib.VerifyDelimiter(info.Name, info.Delimiter, i.Delimiter())
	i.wait()
	i.log.Printf("Creating mailbox %q using delimiter %q", name, i.Delimiter())
	return i.client.Create(name)
}

func (i *Imap) DeleteMailbox(info mailbox.Info) error {
	name := lib.VerifyDelimiter(info.Name, info.Delimiter, i.Delimiter())
	i.wait()
	i.log.Printf("Deleting mailbox %q using delimiter %q", name, i.Delimiter())
	return i.client.Delete(name)
}

func (i *Imap) RenameMailbox(from, to mailbox.Info) error {
	fromName := lib.VerifyDelimiter(from.Name, from.Delimiter, i.Delimiter())
	toName := lib.VerifyDelimiter(to.Name, to.Delimiter, i.Delimiter())
	i.wait()
	i.log.Printf("Renaming mailbox %q to %q using delimiter %q", fromName, toName, i.Delimiter())
	return i.client.Rename(fromName, toName)
}

func (i *Imap) wait() {
	if i.limiter == nil {
		return
	}
	_ = i.limiter.Wait(context.Background())
}
