package provider

import (
	"encoding/json"
	"fmt"

	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/kairos-io/provider-clustertemplate/pkg/functions"
	"github.com/mudler/go-pluggable"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FunctionCall is the payload of a function event.
type FunctionCall struct {
	Name string   `json:"name" yaml:"name"`
	Args []string `json:"args" yaml:"args"`
}

// Factory wires the plugin events to the enrichment step and the helpers.
func Factory(reg *functions.Registry) pluggable.PluginFactory {
	return pluggable.NewPluginFactory(
		pluggable.FactoryPlugin{
			EventType:     domain.EventData,
			PluginHandler: HandleData,
		},
		pluggable.FactoryPlugin{
			EventType:     domain.EventFunction,
			PluginHandler: FunctionHandler(reg),
		},
	)
}

func HandleData(event *pluggable.Event) pluggable.EventResponse {
	logrus.Info("handling template data event")

	var response pluggable.EventResponse
	data := domain.TemplateData{}

	// YAML is a superset of JSON and keeps integers as integers.
	if err := yaml.Unmarshal([]byte(event.Data), &data); err != nil {
		logrus.Error("failed to parse data event: ", err.Error())
		response.Error = fmt.Sprintf("failed to parse data event: %s", err.Error())
		return response
	}

	out, err := json.Marshal(Enrich(data))
	if err != nil {
		logrus.Error("failed to encode enriched data: ", err.Error())
		response.Error = fmt.Sprintf("failed to encode enriched data: %s", err.Error())
		return response
	}
	response.Data = string(out)
	return response
}

func FunctionHandler(reg *functions.Registry) pluggable.PluginHandler {
	return func(event *pluggable.Event) pluggable.EventResponse {
		var response pluggable.EventResponse
		var call FunctionCall

		if err := json.Unmarshal([]byte(event.Data), &call); err != nil {
			logrus.Error("failed to parse function event: ", err.Error())
			response.Error = fmt.Sprintf("failed to parse function event: %s", err.Error())
			return response
		}
		logrus.Infof("handling function event for %s", call.Name)

		result, err := reg.Call(call.Name, call.Args)
		if err != nil {
			logrus.Errorf("%s failed: %v", call.Name, err)
			response.Error = err.Error()
			return response
		}

		out, err := json.Marshal(result)
		if err != nil {
			response.Error = fmt.Sprintf("failed to encode %s result: %s", call.Name, err.Error())
			return response
		}
		response.Data = string(out)
		return response
	}
}
