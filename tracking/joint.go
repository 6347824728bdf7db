package tracking

import (
	"strings"

	"github.com/pkg/errors"
)

// JointType enumerates the 20 joints of a sensor skeleton
type JointType uint8

const (
	HipCenter JointType = iota
	Spine
	ShoulderCenter
	Head
	ShoulderLeft
	ElbowLeft
	WristLeft
	HandLeft
	ShoulderRight
	ElbowRight
	WristRight
	HandRight
	HipLeft
	KneeLeft
	AnkleLeft
	FootLeft
	HipRight
	KneeRight
	AnkleRight
	FootRight
	JointCount
)

// DefaultForwardFoot is the joint the player kicks with
const DefaultForwardFoot = FootRight

var jointNames = [JointCount]string{
	"HipCenter", "Spine", "ShoulderCenter", "Head",
	"ShoulderLeft", "ElbowLeft", "WristLeft", "HandLeft",
	"ShoulderRight", "ElbowRight", "WristRight", "HandRight",
	"HipLeft", "KneeLeft", "AnkleLeft", "FootLeft",
	"HipRight", "KneeRight", "AnkleRight", "FootRight",
}

// ErrUnknownJoint is returned by ParseJointType for names outside the skeleton
var ErrUnknownJoint = errors.New("unknown joint")

func (j JointType) String() string {
	if j < JointCount {
		return jointNames[j]
	}
	return "Unknown"
}

// ParseJointType resolves a joint name case-insensitively
func ParseJointType(name string) (JointType, error) {
	for i, n := range jointNames {
		if strings.EqualFold(n, name) {
			return JointType(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownJoint, "%q", name)
}
