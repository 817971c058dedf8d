package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"github.com/synqronlabs/smtpcmd"
	"github.com/synqronlabs/smtpcmd/dns"
	"github.com/synqronlabs/smtpcmd/sasl"
)

func main() {
	helo := flag.String("helo", "client.example.com", "EHLO identity: domain, IP or [tag:value] literal")
	from := flag.String("from", "", "reverse-path; empty sends the null path")
	to := flag.String("to", "", "comma separated recipients")
	size := flag.Uint64("size", 0, "SIZE parameter; 0 omits it")
	eightBit := flag.Bool("8bit", false, "send BODY=8BITMIME")
	user := flag.String("user", "", "AUTH PLAIN username")
	pass := flag.String("pass", "", "AUTH PLAIN password")
	body := flag.String("body", "", "message file; defaults to a short test message")
	identify := flag.String("identify", "", "derive the EHLO identity from this local IP via reverse DNS")
	nameserver := flag.String("ns", "", "nameserver for -identify, e.g. 8.8.8.8:53; empty uses the system resolver")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var id smtpcmd.ClientID
	var err error
	if *identify != "" {
		id, err = identifyClient(*identify, *nameserver)
	} else {
		id, err = smtpcmd.ParseClientID(*helo)
	}
	if err != nil {
		logger.Error("invalid helo", slog.Any("error", err))
		os.Exit(2)
	}
	logger.Info("client identity", slog.String("id", id.String()))

	sender, err := smtpcmd.ParseMailbox(*from)
	if err != nil {
		logger.Error("invalid sender", slog.Any("error", err))
		os.Exit(2)
	}

	var params []smtpcmd.MailParam
	if *eightBit {
		params = append(params, smtpcmd.BodyParam{Kind: smtpcmd.Body8BitMIME})
	}
	if *size > 0 {
		params = append(params, smtpcmd.SizeParam{Size: *size})
	}
	mail := smtpcmd.NewMail(sender, params...)
	if mail.RequiresSMTPUTF8() {
		mail.Params = append(mail.Params, smtpcmd.SMTPUTF8Param{})
	}

	requests := []smtpcmd.Request{smtpcmd.Ehlo{ID: id}}
	if *user != "" {
		auth, err := smtpcmd.AuthStart(sasl.NewPlain("", *user, *pass))
		if err != nil {
			logger.Error("auth failed", slog.Any("error", err))
			os.Exit(2)
		}
		requests = append(requests, auth)
	}
	requests = append(requests, mail)

	for _, rcpt := range strings.Split(*to, ",") {
		rcpt = strings.TrimSpace(rcpt)
		if rcpt == "" {
			continue
		}
		mb, err := smtpcmd.ParseMailbox(rcpt)
		if err != nil {
			logger.Error("invalid recipient", slog.String("recipient", rcpt), slog.Any("error", err))
			os.Exit(2)
		}
		requests = append(requests, smtpcmd.NewRcpt(mb))
	}
	requests = append(requests, smtpcmd.Data{}, smtpcmd.Quit{})

	msg := strings.NewReader("Subject: test\r\n\r\nThis is a test message.\r\n")
	w := smtpcmd.NewWriter(os.Stdout, &smtpcmd.WriterConfig{Logger: logger})

	for _, r := range requests {
		frame, err := w.WriteRequest(r)
		if err != nil {
			logger.Error("write failed", slog.Any("error", err))
			os.Exit(1)
		}
		if !frame.HasBody {
			continue
		}

		if *body == "" {
			err = w.WriteBody(msg)
		} else {
			err = writeFile(w, *body)
		}
		if err != nil {
			logger.Error("body failed", slog.Any("error", err))
			os.Exit(1)
		}
	}
}

func writeFile(w *smtpcmd.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return w.WriteBody(f)
}

func identifyClient(ip, nameserver string) (smtpcmd.ClientID, error) {
	addr, err := net.ResolveIPAddr("ip", ip)
	if err != nil {
		return nil, err
	}

	var resolver dns.Resolver = dns.NewStdResolver(nil)
	if nameserver != "" {
		resolver = dns.NewResolver(dns.ResolverConfig{
			Nameservers: []string{nameserver},
			Timeout:     5 * time.Second,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return dns.Identify(ctx, resolver, addr)
}
