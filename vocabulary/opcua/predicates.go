package opcua

import "github.com/c360studio/semstreams/vocabulary"

// Motion device predicates describe one motion device. The device
// identification properties come from the DI DeviceType model.
const (
	// MotionDeviceManufacturer is the device manufacturer.
	MotionDeviceManufacturer = "opcua.motion_device_type.manufacturer"

	// MotionDeviceModel is the device model name.
	MotionDeviceModel = "opcua.motion_device_type.model"

	// MotionDeviceProductCode is the manufacturer product code.
	MotionDeviceProductCode = "opcua.motion_device_type.product_code"

	// MotionDeviceSerialNumber is the production serial number.
	MotionDeviceSerialNumber = "opcua.motion_device_type.serial_number"

	// MotionDeviceCategory is the kinematics category.
	// Values: ARTICULATED_ROBOT, SCARA_ROBOT, CARTESIAN_ROBOT, ...
	MotionDeviceCategory = "opcua.motion_device_type.motion_device_category"
)

// Axis predicates describe a single motion axis.
const (
	// AxisMotionProfile is the kind of axis motion.
	// Values: ROTARY, LINEAR, ROTARY_ENDLESS, LINEAR_ENDLESS
	AxisMotionProfile = "opcua.axis_type.motion_profile"

	// AxisAdditionalLoad is the additional load mounted on this axis, in kg.
	AxisAdditionalLoad = "opcua.axis_type.additional_load"
)

// Power train predicates describe motors and gears.
const (
	// MotorManufacturer is the motor manufacturer.
	MotorManufacturer = "opcua.motor_type.manufacturer"

	// MotorModel is the motor model name.
	MotorModel = "opcua.motor_type.model"

	// MotorEffectiveLoadRate is the load rate as a percentage of the
	// maximum continuous load.
	MotorEffectiveLoadRate = "opcua.motor_type.effective_load_rate"

	// GearRatio is the transmission ratio of the gear.
	GearRatio = "opcua.gear_type.gear_ratio"

	// GearPitch is the pitch for linear motion gears.
	GearPitch = "opcua.gear_type.pitch"
)

// Controller predicates describe the control unit and its software.
const (
	// ControllerManufacturer is the controller manufacturer.
	ControllerManufacturer = "opcua.controller_type.manufacturer"

	// ControllerModel is the controller model name.
	ControllerModel = "opcua.controller_type.model"

	// ControllerSerialNumber is the production serial number.
	ControllerSerialNumber = "opcua.controller_type.serial_number"

	// ControllerProductCode is the manufacturer product code.
	ControllerProductCode = "opcua.controller_type.product_code"

	// SoftwareManufacturer is the software vendor.
	SoftwareManufacturer = "opcua.software_type.manufacturer"

	// SoftwareModel is the software product name.
	SoftwareModel = "opcua.software_type.model"

	// SoftwareRevision is the installed software revision.
	SoftwareRevision = "opcua.software_type.software_revision"

	// TaskProgramName is the name of the loaded task program.
	TaskProgramName = "opcua.task_control_type.task_program_name"
)

// Safety state predicates describe the system safety state.
const (
	// SafetyOperationalMode is the current operational mode.
	// Values: MANUAL_REDUCED_SPEED, MANUAL_HIGH_SPEED, AUTOMATIC, ...
	SafetyOperationalMode = "opcua.safety_state_type.operational_mode"

	// SafetyEmergencyStop indicates whether an emergency stop is active.
	SafetyEmergencyStop = "opcua.safety_state_type.emergency_stop"
)

func registerDevicePredicates() {
	vocabulary.Register(MotionDeviceManufacturer,
		vocabulary.WithDescription("Motion device manufacturer"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"Manufacturer"))

	vocabulary.Register(MotionDeviceModel,
		vocabulary.WithDescription("Motion device model"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"Model"))

	vocabulary.Register(MotionDeviceProductCode,
		vocabulary.WithDescription("Manufacturer product code"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"ProductCode"))

	vocabulary.Register(MotionDeviceSerialNumber,
		vocabulary.WithDescription("Production serial number"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"SerialNumber"))

	vocabulary.Register(MotionDeviceCategory,
		vocabulary.WithDescription("Kinematics category"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"MotionDeviceCategory"))

	vocabulary.Register(AxisMotionProfile,
		vocabulary.WithDescription("Kind of axis motion"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"MotionProfile"))

	vocabulary.Register(AxisAdditionalLoad,
		vocabulary.WithDescription("Additional load on the axis"),
		vocabulary.WithDataType("float"),
		vocabulary.WithUnits("kg"),
		vocabulary.WithIRI(Namespace+"AdditionalLoad"))

	vocabulary.Register(MotorManufacturer,
		vocabulary.WithDescription("Motor manufacturer"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"Manufacturer"))

	vocabulary.Register(MotorModel,
		vocabulary.WithDescription("Motor model"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"Model"))

	vocabulary.Register(MotorEffectiveLoadRate,
		vocabulary.WithDescription("Load rate as percentage of maximum continuous load"),
		vocabulary.WithDataType("float"),
		vocabulary.WithUnits("percent"),
		vocabulary.WithRange("0-100"),
		vocabulary.WithIRI(Namespace+"EffectiveLoadRate"))

	vocabulary.Register(GearRatio,
		vocabulary.WithDescription("Transmission ratio"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(Namespace+"GearRatio"))

	vocabulary.Register(GearPitch,
		vocabulary.WithDescription("Pitch for linear motion"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(Namespace+"Pitch"))
}

func registerControllerPredicates() {
	vocabulary.Register(ControllerManufacturer,
		vocabulary.WithDescription("Controller manufacturer"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"Manufacturer"))

	vocabulary.Register(ControllerModel,
		vocabulary.WithDescription("Controller model"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"Model"))

	vocabulary.Register(ControllerSerialNumber,
		vocabulary.WithDescription("Production serial number"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"SerialNumber"))

	vocabulary.Register(ControllerProductCode,
		vocabulary.WithDescription("Manufacturer product code"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"ProductCode"))

	vocabulary.Register(SoftwareManufacturer,
		vocabulary.WithDescription("Software vendor"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"Manufacturer"))

	vocabulary.Register(SoftwareModel,
		vocabulary.WithDescription("Software product name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"Model"))

	vocabulary.Register(SoftwareRevision,
		vocabulary.WithDescription("Installed software revision"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DINamespace+"SoftwareRevision"))

	vocabulary.Register(TaskProgramName,
		vocabulary.WithDescription("Name of the loaded task program"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"TaskProgramName"))

	vocabulary.Register(SafetyOperationalMode,
		vocabulary.WithDescription("Current operational mode"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"OperationalMode"))

	vocabulary.Register(SafetyEmergencyStop,
		vocabulary.WithDescription("Whether an emergency stop is active"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"EmergencyStop"))
}

func init() {
	registerDevicePredicates()
	registerControllerPredicates()
}
