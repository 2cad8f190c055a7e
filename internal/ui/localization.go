package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle = "app_title"

	// Common
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeyBack          = "back"
	KeyLogout        = "logout"
	KeyEdit          = "edit"
	KeyDelete        = "delete"
	KeyLoading       = "loading"
	KeyClose         = "close"
	KeyFieldRequired = "field_required"
	KeyEmailInvalid  = "email_invalid"
	KeyMinChars      = "min_chars"
	KeyMaxChars      = "max_chars"
	KeyGenericError  = "generic_error"

	// Login
	KeyLoginTitle    = "login_title"
	KeyUsername      = "username"
	KeyPassword      = "password"
	KeyLoginSubmit   = "login_submit"
	KeyLoginBadCreds = "login_bad_credentials"
	KeyLoginError    = "login_error"
	KeyGoToRegister  = "go_to_register"
	KeyGoToForgot    = "go_to_forgot"

	// Register
	KeyRegisterTitle   = "register_title"
	KeyFullName        = "full_name"
	KeyEmail           = "email"
	KeyRegisterSubmit  = "register_submit"
	KeyRegisterSuccess = "register_success"
	KeyRegisterError   = "register_error"
	KeyStrengthWeak    = "strength_weak"
	KeyStrengthMedium  = "strength_medium"
	KeyStrengthStrong  = "strength_strong"
	KeyGoToLogin       = "go_to_login"

	// Forgot / reset / change password
	KeyForgotTitle      = "forgot_title"
	KeyForgotSubmit     = "forgot_submit"
	KeyForgotSent       = "forgot_sent"
	KeyForgotNotFound   = "forgot_not_found"
	KeyForgotError      = "forgot_error"
	KeyForgotTryAnother = "forgot_try_another"
	KeyResetTitle       = "reset_title"
	KeyNewPassword      = "new_password"
	KeyConfirmPassword  = "confirm_password"
	KeyResetSubmit      = "reset_submit"
	KeyResetSuccess     = "reset_success"
	KeyResetError       = "reset_error"
	KeyTokenInvalid     = "token_invalid"
	KeyPasswordMismatch = "password_mismatch"
	KeyChangeTitle      = "change_title"
	KeyChangeSuccess    = "change_success"
	KeyChangeError      = "change_error"
	KeyChangeNoUser     = "change_no_user"

	// Verify
	KeyVerifyTitle     = "verify_title"
	KeyVerifyNoToken   = "verify_no_token"
	KeyVerifySuccess   = "verify_success"
	KeyVerifyError     = "verify_error"
	KeyVerifyVerifying = "verify_verifying"

	// Dashboard
	KeyGreetingMorning   = "greeting_morning"
	KeyGreetingAfternoon = "greeting_afternoon"
	KeyGreetingEvening   = "greeting_evening"
	KeyDashboardTasks    = "dashboard_tasks"
	KeyDashboardProfile  = "dashboard_profile"
	KeyDashboardPassword = "dashboard_password"

	// Task list
	KeyTasksTitle        = "tasks_title"
	KeyTasksLoadError    = "tasks_load_error"
	KeyTasksNew          = "tasks_new"
	KeyStatusUpdated     = "status_updated"
	KeyStatusUpdateError = "status_update_error"
	KeyTaskNotFound      = "task_not_found"
	KeyNoPermission      = "no_permission"
	KeySessionExpired    = "session_expired"
	KeyTaskDeleted       = "task_deleted"
	KeyTaskDeleteError   = "task_delete_error"
	KeyConfirmDeleteTask = "confirm_delete_task"
	KeyFiltersCleared    = "filters_cleared"
	KeyClearFilters      = "clear_filters"
	KeyFilterAll         = "filter_all"
	KeySortNewest        = "sort_newest"
	KeySortOldest        = "sort_oldest"
	KeyDateFrom          = "date_from"
	KeyDateTo            = "date_to"
	KeyStatsTotal        = "stats_total"
	KeyNoTasks           = "no_tasks"
	KeyDueDate           = "due_date"
	KeyStatus            = "status"

	// Statuses
	KeyStatusPending   = "task_status_pending"
	KeyStatusStarted   = "task_status_started"
	KeyStatusCompleted = "task_status_completed"

	// Task form
	KeyTaskFormNewTitle  = "task_form_new_title"
	KeyTaskFormEditTitle = "task_form_edit_title"
	KeyTaskTitle         = "task_title"
	KeyTaskDescription   = "task_description"
	KeyTaskCreated       = "task_created"
	KeyTaskUpdated       = "task_updated"
	KeyTaskSaveError     = "task_save_error"
	KeyTaskLoadError     = "task_load_error"
	KeyDateInPast        = "date_in_past"

	// Profile
	KeyProfileTitle       = "profile_title"
	KeyProfileLoadError   = "profile_load_error"
	KeyProfileEditTitle   = "profile_edit_title"
	KeyProfileUpdated     = "profile_updated"
	KeyProfileUpdateError = "profile_update_error"
	KeyProfileNoChanges   = "profile_no_changes"
	KeyUsernameTooShort   = "username_too_short"
	KeyDeleteAccount      = "delete_account"
	KeyConfirmDeleteAcct  = "confirm_delete_account"
	KeyDeleteAcctError    = "delete_account_error"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle: "TaskDesk",

		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeyBack:          "Back",
		KeyLogout:        "Log out",
		KeyEdit:          "Edit",
		KeyDelete:        "Delete",
		KeyLoading:       "Loading...",
		KeyClose:         "Close",
		KeyFieldRequired: "This field is required",
		KeyEmailInvalid:  "Invalid email address",
		KeyMinChars:      "At least %d characters",
		KeyMaxChars:      "At most %d characters",
		KeyGenericError:  "Something went wrong",

		KeyLoginTitle:    "Sign in",
		KeyUsername:      "Username",
		KeyPassword:      "Password",
		KeyLoginSubmit:   "Sign in",
		KeyLoginBadCreds: "Invalid credentials",
		KeyLoginError:    "Error signing in",
		KeyGoToRegister:  "Create an account",
		KeyGoToForgot:    "Forgot your password?",

		KeyRegisterTitle:   "Create account",
		KeyFullName:        "Full name",
		KeyEmail:           "Email",
		KeyRegisterSubmit:  "Register",
		KeyRegisterSuccess: "Registration successful! Check your email to verify your account.",
		KeyRegisterError:   "Error registering user",
		KeyStrengthWeak:    "Weak",
		KeyStrengthMedium:  "Medium",
		KeyStrengthStrong:  "Strong",
		KeyGoToLogin:       "Back to sign in",

		KeyForgotTitle:      "Recover password",
		KeyForgotSubmit:     "Send recovery link",
		KeyForgotSent:       "We have sent a recovery link to your email.",
		KeyForgotNotFound:   "No account found with that email",
		KeyForgotError:      "Error processing the request",
		KeyForgotTryAnother: "Try another email",
		KeyResetTitle:       "Reset password",
		KeyNewPassword:      "New password",
		KeyConfirmPassword:  "Confirm password",
		KeyResetSubmit:      "Reset password",
		KeyResetSuccess:     "Password reset successfully. You can sign in now.",
		KeyResetError:       "Error resetting password",
		KeyTokenInvalid:     "Invalid or expired token",
		KeyPasswordMismatch: "Passwords do not match",
		KeyChangeTitle:      "Change password",
		KeyChangeSuccess:    "Password updated successfully!",
		KeyChangeError:      "Error changing password",
		KeyChangeNoUser:     "Could not determine the current user",

		KeyVerifyTitle:     "Account verification",
		KeyVerifyNoToken:   "No verification token was provided",
		KeyVerifySuccess:   "Account verified! You can sign in now.",
		KeyVerifyError:     "Error verifying the account",
		KeyVerifyVerifying: "Verifying your account...",

		KeyGreetingMorning:   "Good morning",
		KeyGreetingAfternoon: "Good afternoon",
		KeyGreetingEvening:   "Good evening",
		KeyDashboardTasks:    "My tasks",
		KeyDashboardProfile:  "My profile",
		KeyDashboardPassword: "Change password",

		KeyTasksTitle:        "My tasks",
		KeyTasksLoadError:    "Error loading tasks",
		KeyTasksNew:          "New task",
		KeyStatusUpdated:     "Status updated to %s",
		KeyStatusUpdateError: "Error updating the status",
		KeyTaskNotFound:      "Task not found",
		KeyNoPermission:      "You do not have permission to perform this action",
		KeySessionExpired:    "Session expired. Sign in again",
		KeyTaskDeleted:       "Task deleted successfully",
		KeyTaskDeleteError:   "Error deleting task",
		KeyConfirmDeleteTask: "Are you sure you want to delete this task?",
		KeyFiltersCleared:    "Filters cleared",
		KeyClearFilters:      "Clear filters",
		KeyFilterAll:         "All",
		KeySortNewest:        "Newest first",
		KeySortOldest:        "Oldest first",
		KeyDateFrom:          "From",
		KeyDateTo:            "To",
		KeyStatsTotal:        "Total",
		KeyNoTasks:           "No tasks to show",
		KeyDueDate:           "Due date",
		KeyStatus:            "Status",

		KeyStatusPending:   "Pending",
		KeyStatusStarted:   "Started",
		KeyStatusCompleted: "Completed",

		KeyTaskFormNewTitle:  "New task",
		KeyTaskFormEditTitle: "Edit task",
		KeyTaskTitle:         "Title",
		KeyTaskDescription:   "Description",
		KeyTaskCreated:       "Task created successfully",
		KeyTaskUpdated:       "Task updated successfully",
		KeyTaskSaveError:     "Error saving the task",
		KeyTaskLoadError:     "Could not load the task",
		KeyDateInPast:        "The due date cannot be earlier than today",

		KeyProfileTitle:       "My profile",
		KeyProfileLoadError:   "Error loading profile",
		KeyProfileEditTitle:   "Edit profile",
		KeyProfileUpdated:     "Profile updated successfully",
		KeyProfileUpdateError: "Error updating profile",
		KeyProfileNoChanges:   "You must modify at least one field",
		KeyUsernameTooShort:   "The username must have at least 3 characters",
		KeyDeleteAccount:      "Delete account",
		KeyConfirmDeleteAcct:  "Are you sure you want to delete your account? This cannot be undone.",
		KeyDeleteAcctError:    "Error deleting account",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle: "TaskDesk",

		KeySave:          "Guardar",
		KeyCancel:        "Cancelar",
		KeyBack:          "Volver",
		KeyLogout:        "Cerrar sesión",
		KeyEdit:          "Editar",
		KeyDelete:        "Eliminar",
		KeyLoading:       "Cargando...",
		KeyClose:         "Cerrar",
		KeyFieldRequired: "Este campo es requerido",
		KeyEmailInvalid:  "Correo electrónico inválido",
		KeyMinChars:      "Mínimo %d caracteres",
		KeyMaxChars:      "Máximo %d caracteres",
		KeyGenericError:  "Ha ocurrido un error",

		KeyLoginTitle:    "Iniciar sesión",
		KeyUsername:      "Nombre de usuario",
		KeyPassword:      "Contraseña",
		KeyLoginSubmit:   "Iniciar sesión",
		KeyLoginBadCreds: "Credenciales inválidas",
		KeyLoginError:    "Error al iniciar sesión",
		KeyGoToRegister:  "Crear una cuenta",
		KeyGoToForgot:    "¿Olvidaste tu contraseña?",

		KeyRegisterTitle:   "Crear cuenta",
		KeyFullName:        "Nombre completo",
		KeyEmail:           "Correo electrónico",
		KeyRegisterSubmit:  "Registrarse",
		KeyRegisterSuccess: "¡Registro exitoso! Revisa tu correo para verificar tu cuenta.",
		KeyRegisterError:   "Error al registrar usuario",
		KeyStrengthWeak:    "Débil",
		KeyStrengthMedium:  "Media",
		KeyStrengthStrong:  "Fuerte",
		KeyGoToLogin:       "Volver a iniciar sesión",

		KeyForgotTitle:      "Recuperar contraseña",
		KeyForgotSubmit:     "Enviar enlace de recuperación",
		KeyForgotSent:       "Hemos enviado un enlace de recuperación a tu correo electrónico.",
		KeyForgotNotFound:   "No se encontró una cuenta con ese correo",
		KeyForgotError:      "Error al procesar la solicitud",
		KeyForgotTryAnother: "Probar con otro correo",
		KeyResetTitle:       "Restablecer contraseña",
		KeyNewPassword:      "Nueva contraseña",
		KeyConfirmPassword:  "Confirmar contraseña",
		KeyResetSubmit:      "Restablecer contraseña",
		KeyResetSuccess:     "Contraseña restablecida correctamente. Ya puedes iniciar sesión.",
		KeyResetError:       "Error al restablecer contraseña",
		KeyTokenInvalid:     "Token inválido o expirado",
		KeyPasswordMismatch: "Las contraseñas no coinciden",
		KeyChangeTitle:      "Cambiar contraseña",
		KeyChangeSuccess:    "¡Contraseña actualizada correctamente!",
		KeyChangeError:      "Error al cambiar la contraseña",
		KeyChangeNoUser:     "No se pudo obtener el usuario actual",

		KeyVerifyTitle:     "Verificación de cuenta",
		KeyVerifyNoToken:   "No se proporcionó un token de verificación",
		KeyVerifySuccess:   "¡Cuenta verificada! Ya puedes iniciar sesión.",
		KeyVerifyError:     "Error al verificar la cuenta",
		KeyVerifyVerifying: "Verificando tu cuenta...",

		KeyGreetingMorning:   "Buenos días",
		KeyGreetingAfternoon: "Buenas tardes",
		KeyGreetingEvening:   "Buenas noches",
		KeyDashboardTasks:    "Mis tareas",
		KeyDashboardProfile:  "Mi perfil",
		KeyDashboardPassword: "Cambiar contraseña",

		KeyTasksTitle:        "Mis tareas",
		KeyTasksLoadError:    "Error al cargar tareas",
		KeyTasksNew:          "Nueva tarea",
		KeyStatusUpdated:     "Estado actualizado a %s",
		KeyStatusUpdateError: "Error al actualizar el estado",
		KeyTaskNotFound:      "Tarea no encontrada",
		KeyNoPermission:      "No tienes permisos para realizar esta acción",
		KeySessionExpired:    "Sesión expirada. Inicia sesión nuevamente",
		KeyTaskDeleted:       "Tarea eliminada correctamente",
		KeyTaskDeleteError:   "Error al eliminar tarea",
		KeyConfirmDeleteTask: "¿Estás seguro de eliminar esta tarea?",
		KeyFiltersCleared:    "Filtros limpiados",
		KeyClearFilters:      "Limpiar filtros",
		KeyFilterAll:         "Todas",
		KeySortNewest:        "Más recientes primero",
		KeySortOldest:        "Más antiguas primero",
		KeyDateFrom:          "Desde",
		KeyDateTo:            "Hasta",
		KeyStatsTotal:        "Total",
		KeyNoTasks:           "No hay tareas para mostrar",
		KeyDueDate:           "Fecha límite",
		KeyStatus:            "Estado",

		KeyStatusPending:   "Pendiente",
		KeyStatusStarted:   "Iniciada",
		KeyStatusCompleted: "Completada",

		KeyTaskFormNewTitle:  "Nueva tarea",
		KeyTaskFormEditTitle: "Editar tarea",
		KeyTaskTitle:         "Título",
		KeyTaskDescription:   "Descripción",
		KeyTaskCreated:       "Tarea creada correctamente",
		KeyTaskUpdated:       "Tarea actualizada correctamente",
		KeyTaskSaveError:     "Error al guardar la tarea",
		KeyTaskLoadError:     "No se pudo cargar la tarea",
		KeyDateInPast:        "La fecha límite no puede ser anterior a hoy",

		KeyProfileTitle:       "Mi perfil",
		KeyProfileLoadError:   "Error al cargar perfil",
		KeyProfileEditTitle:   "Editar perfil",
		KeyProfileUpdated:     "Perfil actualizado correctamente",
		KeyProfileUpdateError: "Error al actualizar perfil",
		KeyProfileNoChanges:   "Debes modificar al menos un campo",
		KeyUsernameTooShort:   "El nombre de usuario debe tener al menos 3 caracteres",
		KeyDeleteAccount:      "Eliminar cuenta",
		KeyConfirmDeleteAcct:  "¿Estás seguro de eliminar tu cuenta? Esta acción no se puede deshacer.",
		KeyDeleteAcctError:    "Error al eliminar cuenta",
	}
}

// StatusText returns the localized display name for a task status wire value
func (l *Localization) StatusText(status string) string {
	switch status {
	case "PENDIENTE":
		return l.GetText(KeyStatusPending)
	case "INICIADA":
		return l.GetText(KeyStatusStarted)
	case "COMPLETADA":
		return l.GetText(KeyStatusCompleted)
	default:
		return status
	}
}
