package opcua

// Namespace is the base IRI for the OPC UA Robotics companion specification.
const Namespace = "http://opcfoundation.org/UA/Robotics/"

// DINamespace is the base IRI for the OPC UA Device Integration model,
// which the robotics types inherit their device identification from.
const DINamespace = "http://opcfoundation.org/UA/DI/"

// Class IRIs for the robotics object-type hierarchy.
const (
	// ClassMotionDeviceSystem represents the top-level system of motion
	// devices, controllers, and safety states.
	ClassMotionDeviceSystem = Namespace + "MotionDeviceSystemType"

	// ClassMotionDevice represents one motion device (robot arm, axis
	// system) within a motion device system.
	ClassMotionDevice = Namespace + "MotionDeviceType"

	// ClassAxis represents a single motion axis.
	ClassAxis = Namespace + "AxisType"

	// ClassPowerTrain represents the power train driving one or more axes.
	ClassPowerTrain = Namespace + "PowerTrainType"

	// ClassMotor represents a motor within a power train.
	ClassMotor = Namespace + "MotorType"

	// ClassGear represents a gear within a power train.
	ClassGear = Namespace + "GearType"

	// ClassController represents the control unit of a motion device system.
	ClassController = Namespace + "ControllerType"

	// ClassSoftware represents software installed on a controller.
	ClassSoftware = Namespace + "SoftwareType"

	// ClassTaskControl represents the task control of a controller.
	ClassTaskControl = Namespace + "TaskControlType"

	// ClassSafetyState represents the safety state of a motion device system.
	ClassSafetyState = Namespace + "SafetyStateType"
)

// ClassIRIs maps local class names of the robotics vocabulary to their
// canonical IRIs. The schema merger consumes this for type enrichment.
var ClassIRIs = map[string]string{
	"MotionDeviceSystemType": ClassMotionDeviceSystem,
	"MotionDeviceType":       ClassMotionDevice,
	"AxisType":               ClassAxis,
	"PowerTrainType":         ClassPowerTrain,
	"MotorType":              ClassMotor,
	"GearType":               ClassGear,
	"ControllerType":         ClassController,
	"SoftwareType":           ClassSoftware,
	"TaskControlType":        ClassTaskControl,
	"SafetyStateType":        ClassSafetyState,
}
