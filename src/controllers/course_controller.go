package controllers

import (
	"errors"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"course-catalog/src/models"
	"course-catalog/src/services/courses"
	"course-catalog/src/services/uploads"
	"course-catalog/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageCleaner disposes of stored images that are no longer referenced.
type ImageCleaner interface {
	RemoveImage(fileName string)
}

type CourseController struct {
	Courses    *courses.Service
	Images     *uploads.ImageIntake
	Cleaner    ImageCleaner
	PublicPath string
}

func NewCourseController(svc *courses.Service, images *uploads.ImageIntake, cleaner ImageCleaner, publicPath string) *CourseController {
	return &CourseController{Courses: svc, Images: images, Cleaner: cleaner, PublicPath: publicPath}
}

// GetAllCourses godoc
// @Summary      List courses
// @Description  List all courses, optionally only those in the given categories
// @Tags         courses
// @Produce      json
// @Param        categories query string false "Comma-separated category IDs"
// @Success      200  {array}   models.Course
// @Failure      400  {object}  models.ResultResponse
// @Failure      500  {object}  models.ResultResponse
// @Router       /courses [get]
func (h *CourseController) GetAllCourses(c *fiber.Ctx) error {
	var categories []primitive.ObjectID
	if raw := c.Query("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := primitive.ObjectIDFromHex(part)
			if err != nil {
				return utils.Fail(c, fiber.StatusBadRequest, "Invalid category id")
			}
			categories = append(categories, id)
		}
	}

	list, err := h.Courses.List(c.UserContext(), categories)
	if err != nil {
		log.Println("❌ Failed to list courses:", err)
		return utils.Fail(c, fiber.StatusInternalServerError, "")
	}
	return c.JSON(list)
}

// GetCourseByID godoc
// @Summary      Get a course by ID
// @Tags         courses
// @Produce      json
// @Param        id   path  string  true  "Course ID"
// @Success      200  {object}  models.Course
// @Failure      400  {object}  models.ResultResponse
// @Failure      404  {object}  models.ResultResponse
// @Failure      500  {object}  models.ResultResponse
// @Router       /courses/{id} [get]
func (h *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid course id")
	}

	course, err := h.Courses.Get(c.UserContext(), id)
	if errors.Is(err, courses.ErrCourseNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "")
	}
	if err != nil {
		log.Println("❌ Failed to get course:", err)
		return utils.Fail(c, fiber.StatusInternalServerError, "")
	}
	return c.JSON(course)
}

// parseInput decodes a create/update body and its category id.
// It returns the HTTP status and message to send when the body is rejected.
func parseInput(c *fiber.Ctx) (*models.CourseInput, primitive.ObjectID, int, string) {
	var input models.CourseInput
	if err := c.BodyParser(&input); err != nil {
		return nil, primitive.NilObjectID, fiber.StatusBadRequest, "Invalid input: " + err.Error()
	}
	category, err := primitive.ObjectIDFromHex(input.Category)
	if err != nil {
		return nil, primitive.NilObjectID, fiber.StatusBadRequest, "Invalid category"
	}
	return &input, category, 0, ""
}

// imageFile returns the uploaded image part, or nil when none was sent.
func imageFile(c *fiber.Ctx) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

func (h *CourseController) imageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, uploads.ErrInvalidImageType):
		return utils.SendText(c, fiber.StatusBadRequest, "invalid image type")
	case errors.Is(err, uploads.ErrImageTooLarge):
		return utils.SendText(c, fiber.StatusBadRequest, "image too large")
	default:
		log.Println("❌ Failed to store image:", err)
		return utils.SendText(c, fiber.StatusInternalServerError, "the image cannot be stored")
	}
}

// rejectCategory writes the error response and reports true when the
// category does not exist or cannot be looked up.
func (h *CourseController) rejectCategory(c *fiber.Ctx, id primitive.ObjectID) (bool, error) {
	err := h.Courses.CheckCategory(c.UserContext(), id)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, courses.ErrInvalidCategory) {
		return true, utils.SendText(c, fiber.StatusBadRequest, "Invalid category")
	}
	log.Println("❌ Category lookup failed:", err)
	return true, utils.SendText(c, fiber.StatusInternalServerError, "the category cannot be checked")
}

// CreateCourse godoc
// @Summary      Create a new course
// @Description  Create a course from a multipart form with a required image file
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData string true  "Name"
// @Param        description  formData string true  "Description"
// @Param        author       formData string true  "Author"
// @Param        price        formData number true  "Price"
// @Param        category     formData string true  "Category ID"
// @Param        userEnrolled formData int    false "Enrolled users"
// @Param        rating       formData number false "Rating"
// @Param        numReviews   formData int    false "Number of reviews"
// @Param        isFeatured   formData bool   false "Featured"
// @Param        image        formData file   true  "Thumbnail (png, jpeg, jpg)"
// @Success      200  {object}  models.Course
// @Failure      400  {string}  string
// @Failure      500  {string}  string
// @Router       /courses [post]
func (h *CourseController) CreateCourse(c *fiber.Ctx) error {
	input, category, status, msg := parseInput(c)
	if input == nil {
		return utils.SendText(c, status, msg)
	}
	if rejected, err := h.rejectCategory(c, category); rejected {
		return err
	}

	file := imageFile(c)
	if file == nil {
		return utils.SendText(c, fiber.StatusBadRequest, "No image in the request")
	}
	if err := h.Images.Check(file); err != nil {
		return h.imageError(c, err)
	}
	if err := input.Validate(); err != nil {
		return utils.SendText(c, fiber.StatusBadRequest, err.Error())
	}

	fileName, err := h.Images.Store(file)
	if err != nil {
		return h.imageError(c, err)
	}

	course := input.ToCourse(category, uploads.PublicURL(c.BaseURL(), h.PublicPath, fileName))
	created, err := h.Courses.Create(c.UserContext(), course)
	if err != nil {
		log.Println("❌ Failed to create course:", err)
		h.Images.Remove(fileName)
		return utils.SendText(c, fiber.StatusInternalServerError, "the course cannot be created")
	}
	return c.JSON(created)
}

// UpdateCourse godoc
// @Summary      Update a course
// @Description  Replace every field of a course; the image is kept unless a new one is uploaded
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path     string true  "Course ID"
// @Param        name         formData string true  "Name"
// @Param        description  formData string true  "Description"
// @Param        author       formData string true  "Author"
// @Param        price        formData number true  "Price"
// @Param        category     formData string true  "Category ID"
// @Param        image        formData file   false "New thumbnail"
// @Success      200  {object}  models.Course
// @Failure      400  {string}  string
// @Failure      500  {string}  string
// @Router       /courses/{id} [put]
func (h *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.SendText(c, fiber.StatusBadRequest, "Invalid course id")
	}

	input, category, status, msg := parseInput(c)
	if input == nil {
		return utils.SendText(c, status, msg)
	}
	if rejected, err := h.rejectCategory(c, category); rejected {
		return err
	}

	existing, err := h.Courses.Get(c.UserContext(), id)
	if errors.Is(err, courses.ErrCourseNotFound) {
		return utils.SendText(c, fiber.StatusBadRequest, "Invalid Course!")
	}
	if err != nil {
		log.Println("❌ Failed to load course:", err)
		return utils.SendText(c, fiber.StatusInternalServerError, "The course cannot be updated")
	}

	file := imageFile(c)
	if file != nil {
		if err := h.Images.Check(file); err != nil {
			return h.imageError(c, err)
		}
	}
	if err := input.Validate(); err != nil {
		return utils.SendText(c, fiber.StatusBadRequest, err.Error())
	}

	image := existing.Image
	newFile := ""
	if file != nil {
		if newFile, err = h.Images.Store(file); err != nil {
			return h.imageError(c, err)
		}
		image = uploads.PublicURL(c.BaseURL(), h.PublicPath, newFile)
	}

	updated, err := h.Courses.Update(c.UserContext(), id, input.ToCourse(category, image))
	if err != nil {
		log.Println("❌ Failed to update course:", err)
		h.Images.Remove(newFile)
		if errors.Is(err, courses.ErrCourseNotFound) {
			return utils.SendText(c, fiber.StatusBadRequest, "Invalid Course!")
		}
		return utils.SendText(c, fiber.StatusInternalServerError, "The course cannot be updated")
	}

	if newFile != "" {
		h.Cleaner.RemoveImage(uploads.FileNameFromURL(existing.Image, h.PublicPath))
	}
	return c.JSON(updated)
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Param        courseId   path  string  true  "Course ID"
// @Success      200  {object}  models.ResultResponse
// @Failure      400  {object}  models.ResultResponse
// @Failure      404  {object}  models.ResultResponse
// @Router       /courses/{courseId} [delete]
func (h *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ResultResponse{Success: false, Error: err.Error()})
	}

	removed, err := h.Courses.Delete(c.UserContext(), id)
	if errors.Is(err, courses.ErrCourseNotFound) {
		return utils.Fail(c, fiber.StatusNotFound, "course not found")
	}
	if err != nil {
		log.Println("❌ Failed to delete course:", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.ResultResponse{Success: false, Error: err.Error()})
	}

	h.Cleaner.RemoveImage(uploads.FileNameFromURL(removed.Image, h.PublicPath))
	return c.JSON(models.ResultResponse{Success: true, Message: "the course is deleted"})
}

// GetCourseCount godoc
// @Summary      Count courses
// @Tags         courses
// @Produce      json
// @Success      200  {object}  models.CourseCountResponse
// @Failure      500  {object}  models.ResultResponse
// @Router       /courses/get/count [get]
func (h *CourseController) GetCourseCount(c *fiber.Ctx) error {
	n, err := h.Courses.Count(c.UserContext())
	if err != nil {
		log.Println("❌ Failed to count courses:", err)
		return utils.Fail(c, fiber.StatusInternalServerError, "")
	}
	return c.JSON(models.CourseCountResponse{CourseCount: n})
}

// GetFeaturedCourses godoc
// @Summary      List featured courses
// @Description  Up to count featured courses; 0 or no count returns all of them
// @Tags         courses
// @Produce      json
// @Param        count   path  int  false  "Maximum number of courses"
// @Success      200  {object}  models.FeaturedCoursesResponse
// @Failure      400  {object}  models.ResultResponse
// @Failure      500  {object}  models.ResultResponse
// @Router       /courses/get/featured/{count} [get]
func (h *CourseController) GetFeaturedCourses(c *fiber.Ctx) error {
	var limit int64
	if raw := c.Params("count"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return utils.Fail(c, fiber.StatusBadRequest, "Invalid count")
		}
		limit = n
	}

	list, err := h.Courses.Featured(c.UserContext(), limit)
	if err != nil {
		log.Println("❌ Failed to list featured courses:", err)
		return utils.Fail(c, fiber.StatusInternalServerError, "")
	}
	return c.JSON(models.FeaturedCoursesResponse{CourseFeatured: list})
}
