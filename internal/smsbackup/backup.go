// Package smsbackup reads SMS backup XML files (the common
// <smses><sms address body date/></smses> export format) into messages
// ready for classification.
package smsbackup

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

type smsRecord struct {
	Address string `xml:"address,attr"`
	Body    string `xml:"body,attr"`
	Date    string `xml:"date,attr"`
}

type backupFile struct {
	XMLName xml.Name    `xml:"smses"`
	SMS     []smsRecord `xml:"sms"`
}

// Message is one inbound SMS: the body, its receipt time, and the sender
// address. Sender is carried for filtering only; classification ignores it.
type Message struct {
	Body      string
	Timestamp time.Time
	Sender    string
}

// Filter narrows a backup scan. Zero values disable the respective check.
type Filter struct {
	Sender string    // exact sender address match
	From   time.Time // drop messages received before this instant
}

// ReadFile parses a backup XML file and returns its messages in file order.
// Exact duplicates within the file (same timestamp, sender, and body) are
// collapsed to one message; records with malformed dates are skipped.
func ReadFile(path string, f Filter) ([]Message, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open backup file: %w", err)
	}
	defer file.Close()
	return Read(file, f)
}

// Read parses backup XML from r. See ReadFile.
func Read(r io.Reader, f Filter) ([]Message, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}

	var backup backupFile
	if err := xml.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("parse backup XML: %w", err)
	}

	seen := make(map[string]bool)
	var out []Message
	for _, sms := range backup.SMS {
		if f.Sender != "" && sms.Address != f.Sender {
			continue
		}

		signature := sms.Date + "|" + sms.Address + "|" + sms.Body
		if seen[signature] {
			continue
		}
		seen[signature] = true

		dateMs, err := strconv.ParseInt(sms.Date, 10, 64)
		if err != nil {
			continue
		}
		ts := time.UnixMilli(dateMs).UTC()

		if !f.From.IsZero() && ts.Before(f.From) {
			continue
		}

		out = append(out, Message{Body: sms.Body, Timestamp: ts, Sender: sms.Address})
	}

	return out, nil
}
