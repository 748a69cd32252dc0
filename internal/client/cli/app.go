// Package cli implements the interactive terminal client: it collects the
// credentials and one request's worth of input, validates the input locally
// the way the server will, sends the request and prints the response.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/medregistry/internal/client/client"
	"github.com/dmitrijs2005/medregistry/internal/client/config"
	"github.com/dmitrijs2005/medregistry/internal/wire"
)

type App struct {
	config *config.Config
	client *client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		client: client.New(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run performs one full exchange: prompt, send, print the response.
func (a *App) Run(ctx context.Context) error {
	req, err := a.buildRequest()
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nServer %s response:\n\n%s", a.config.ServerEndpointAddr, resp)
	return nil
}

func (a *App) buildRequest() (*wire.Request, error) {
	username, err := GetSimpleText(a.reader, "Please enter username: ", a.out)
	if err != nil {
		return nil, err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return nil, err
	}

	method, err := GetSimpleText(a.reader, "GET or POST?: ", a.out)
	if err != nil {
		return nil, err
	}
	method = strings.ToUpper(method)

	req := &wire.Request{
		Method:  method,
		Path:    wire.ResourcePath,
		Query:   map[string]string{"username": username, "password": password},
		Headers: map[string]string{},
	}

	switch method {
	case wire.MethodGet:
		return req, nil
	case wire.MethodPost:
		if err := a.fillEntry(req); err != nil {
			return nil, err
		}
		return req, nil
	default:
		// send it anyway and let the server answer with its rejection
		fmt.Fprintf(a.out, "Unimplemented method: %s\nTry 'GET' or 'POST'\n", method)
		return req, nil
	}
}

// fillEntry prompts for an entry type and its fields, re-asking until the
// input passes the same checks the server applies.
func (a *App) fillEntry(req *wire.Request) error {
	var entryType string
	for {
		v, err := GetSimpleText(a.reader, "Enter entry type (patient/pressure/temperature): ", a.out)
		if err != nil {
			return err
		}
		entryType = strings.ToLower(v)
		if entryType == wire.EntryPatient || entryType == wire.EntryPressure || entryType == wire.EntryTemperature {
			break
		}
		fmt.Fprintln(a.out, "Wrong entry type! Please select one from (patient/pressure/temperature). Try again")
	}
	req.Headers[wire.HeaderEntryType] = entryType

	var payload map[string]string
	var err error
	switch entryType {
	case wire.EntryPatient:
		payload, err = a.promptPatient()
	case wire.EntryPressure:
		payload, err = a.promptPressure()
	default:
		payload, err = a.promptTemperature()
	}
	if err != nil {
		return err
	}

	body, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		return err
	}
	req.Body = string(body)
	return nil
}

func (a *App) promptPatient() (map[string]string, error) {
	var dob string
	for {
		v, err := GetSimpleText(a.reader, "Enter day of birth in format: Year/Month/Day\n", a.out)
		if err != nil {
			return nil, err
		}
		if isPositiveIntSeq(v, 3) {
			dob = v
			break
		}
		fmt.Fprintln(a.out, "Wrong date of birth! Please enter positive integer values in demanded format. Try again")
	}

	var lastName, firstName string
	for {
		ln, err := GetSimpleText(a.reader, "Enter your last name: ", a.out)
		if err != nil {
			return nil, err
		}
		fn, err := GetSimpleText(a.reader, "Enter your first name: ", a.out)
		if err != nil {
			return nil, err
		}
		if isAlpha(ln) && isAlpha(fn) {
			lastName, firstName = capitalize(ln), capitalize(fn)
			break
		}
		fmt.Fprintln(a.out, "Wrong last or first name value! Please enter values that contain only letters. Try again")
	}

	return map[string]string{
		"last_name":     lastName,
		"first_name":    firstName,
		"date_of_birth": dob,
	}, nil
}

func (a *App) promptAcquisition() (string, error) {
	for {
		v, err := GetSimpleText(a.reader, "Enter acquisition timestamp in format: Year/Month/Day/Hour/Minute\n", a.out)
		if err != nil {
			return "", err
		}
		if isPositiveIntSeq(v, 5) {
			return v, nil
		}
		fmt.Fprintln(a.out, "Wrong acquisition timestamp! Please enter positive integer values in demanded format. Try again")
	}
}

func (a *App) promptPressure() (map[string]string, error) {
	acquisition, err := a.promptAcquisition()
	if err != nil {
		return nil, err
	}

	for {
		systolic, err := GetSimpleText(a.reader, "Enter systolic pressure value: ", a.out)
		if err != nil {
			return nil, err
		}
		diastolic, err := GetSimpleText(a.reader, "Enter diastolic pressure value: ", a.out)
		if err != nil {
			return nil, err
		}
		if isPositiveNumber(systolic) && isPositiveNumber(diastolic) {
			return map[string]string{
				"systolic":    systolic,
				"diastolic":   diastolic,
				"acquisition": acquisition,
			}, nil
		}
		fmt.Fprintln(a.out, "Wrong pressure values! Please enter positive, floating point values. Try again")
	}
}

func (a *App) promptTemperature() (map[string]string, error) {
	acquisition, err := a.promptAcquisition()
	if err != nil {
		return nil, err
	}

	for {
		value, err := GetSimpleText(a.reader, "Enter temperature value: ", a.out)
		if err != nil {
			return nil, err
		}
		if isPositiveNumber(value) {
			return map[string]string{
				"value":       value,
				"acquisition": acquisition,
			}, nil
		}
		fmt.Fprintln(a.out, "Wrong temperature value! Please enter positive, floating point value. Try again")
	}
}
