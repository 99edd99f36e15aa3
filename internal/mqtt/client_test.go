package mqtt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClimateCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/climate/my_heater/target_temperature/set"
	r := climateCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(matches[0][1], "my_heater", "device extract")
	assert.Equal(matches[0][2], COMMAND_TARGET_TEMPERATURE, "command extract")
}

func TestClimateModeCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/climate/my_heater/mode/set"
	r := climateCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(matches[0][1], "my_heater", "device extract")
	assert.Equal(matches[0][2], COMMAND_MODE, "command extract")
}

func TestClimateCommandParseFail(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/climate/my_heater/mode"
	r := climateCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(len(matches), 0, "no matches")
}

func TestClimateStateTopicNoMatch(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/climate/my_heater/current_temperature/set"
	r := climateCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(len(matches), 0, "no matches")
}
